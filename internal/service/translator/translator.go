// Package translator переводит коды статусов и типов бэкенда в подписи для интерфейса.
package translator

import "dashboard/internal/entities"

type Domain string

const (
	DomainOrderStatus   Domain = "orderStatus"
	DomainVehicleStatus Domain = "vehicleStatus"
	DomainVehicleType   Domain = "vehicleType"
	DomainDriverStatus  Domain = "driverStatus"
)

var labels = map[Domain]map[string]string{
	DomainOrderStatus: {
		string(entities.OrderPending):   "Ожидание",
		string(entities.OrderInTransit): "В пути",
		string(entities.OrderDelivered): "Доставлен",
		string(entities.OrderCanceled):  "Отменен",
	},
	DomainVehicleStatus: {
		string(entities.VehicleAvailable):        "Доступен",
		string(entities.VehicleInTransit):        "В пути",
		string(entities.VehicleUnderMaintenance): "На обслуживании",
	},
	DomainVehicleType: {
		string(entities.VehicleTruck):      "Грузовик",
		string(entities.VehicleVan):        "Фургон",
		string(entities.VehicleMotorcycle): "Мотоцикл",
	},
	DomainDriverStatus: {
		string(entities.DriverActive):    "Активен",
		string(entities.DriverInactive):  "Неактивен",
		string(entities.DriverOnLeave):   "В отпуске",
		string(entities.DriverSuspended): "Отстранен",
	},
}

// Translate никогда не падает: неизвестный код или домен возвращается как есть.
func Translate(code string, domain Domain) string {
	if label, ok := labels[domain][code]; ok {
		return label
	}
	return code
}

func OrderStatus(s entities.OrderStatusType) string {
	return Translate(string(s), DomainOrderStatus)
}

func VehicleStatus(s entities.VehicleStatusType) string {
	return Translate(string(s), DomainVehicleStatus)
}

func VehicleType(t entities.VehicleType) string {
	return Translate(string(t), DomainVehicleType)
}

func DriverStatus(s entities.DriverStatusType) string {
	return Translate(string(s), DomainDriverStatus)
}
