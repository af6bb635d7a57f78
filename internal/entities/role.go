package entities

// Role закрытый набор ролей участников площадки.
type Role string

const (
	RoleShipper         Role = "shipper"
	RoleBroker          Role = "broker"
	RoleDriver          Role = "driver"
	RoleServiceProvider Role = "service_provider"
	RoleAdmin           Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleShipper, RoleBroker, RoleDriver, RoleServiceProvider, RoleAdmin:
		return true
	}
	return false
}

type Capability string

const (
	CapPostLoad      Capability = "post_load"
	CapManageLoad    Capability = "manage_load"
	CapPlaceBid      Capability = "place_bid"
	CapDecideBid     Capability = "decide_bid"
	CapUpdateOrder   Capability = "update_order"
	CapCompleteOrder Capability = "complete_order"
	CapSendLocation  Capability = "send_location"
	CapViewTracking  Capability = "view_tracking"
	CapWithdraw      Capability = "withdraw"
)

var roleCapabilities = map[Role]map[Capability]struct{}{
	RoleShipper: {
		CapPostLoad:      {},
		CapManageLoad:    {},
		CapDecideBid:     {},
		CapCompleteOrder: {},
		CapViewTracking:  {},
	},
	RoleBroker: {
		CapPostLoad:      {},
		CapManageLoad:    {},
		CapDecideBid:     {},
		CapCompleteOrder: {},
		CapViewTracking:  {},
	},
	RoleDriver: {
		CapPlaceBid:     {},
		CapUpdateOrder:  {},
		CapSendLocation: {},
		CapViewTracking: {},
		CapWithdraw:     {},
	},
	RoleServiceProvider: {
		CapViewTracking: {},
		CapWithdraw:     {},
	},
	RoleAdmin: {
		CapPostLoad:      {},
		CapManageLoad:    {},
		CapPlaceBid:      {},
		CapDecideBid:     {},
		CapUpdateOrder:   {},
		CapCompleteOrder: {},
		CapSendLocation:  {},
		CapViewTracking:  {},
		CapWithdraw:      {},
	},
}

// Can проверяет, дает ли роль указанную возможность.
func (r Role) Can(c Capability) bool {
	_, ok := roleCapabilities[r][c]
	return ok
}

// Actor аутентифицированный участник запроса.
type Actor struct {
	ID   int64
	Role Role
}
