package entities

import "time"

type Driver struct {
	ID            int64
	Name          string
	Phone         string
	VehicleType   VehicleType
	CapacityKg    int64
	CurrentLoadKg int64
	Status        DriverStatusType
	ReferrerID    *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AvailableCapacityKg свободная грузоподъемность с учетом уже
// назначенных загрузов.
func (d Driver) AvailableCapacityKg() int64 {
	free := d.CapacityKg - d.CurrentLoadKg
	if free < 0 {
		return 0
	}
	return free
}

type VehicleType string

const (
	VehicleAny   VehicleType = "any"
	VehicleVan   VehicleType = "van"
	VehicleTruck VehicleType = "truck"
	VehicleSemi  VehicleType = "semi"
)

const DefaultVehicleType = VehicleVan

func (t VehicleType) String() string {
	return string(t)
}

type DriverStatusType string

const (
	DriverAvailable DriverStatusType = "available"
	DriverBusy      DriverStatusType = "busy"
	DriverOffline   DriverStatusType = "offline"
)

const DefaultDriverStatus = DriverAvailable

func (t DriverStatusType) String() string {
	return string(t)
}

type DriverModify struct {
	ID          *int64
	Name        *string
	Phone       *string
	VehicleType *VehicleType
	CapacityKg  *int64
	Status      *DriverStatusType
}

// DriverLocation последняя известная позиция водителя.
type DriverLocation struct {
	DriverID   int64
	Lat        float64
	Lon        float64
	RecordedAt time.Time
}
