package wallet

import "errors"

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidOwner  = errors.New("invalid wallet owner")

	ErrWalletNotFound      = errors.New("wallet not found")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrForbidden           = errors.New("actor is not allowed to use this wallet")

	// ErrReferralCycle означает поврежденный реферальный граф: начисление
	// останавливается, транзакция откатывается.
	ErrReferralCycle = errors.New("referral chain contains a cycle")
)
