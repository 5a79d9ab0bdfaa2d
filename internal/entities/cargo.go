package entities

type Cargo struct {
	ID              int64
	Description     string
	Weight          float64
	Volume          float64
	PickupAddress   string
	DeliveryAddress string
	Client          Party
	Recipient       Party
}

type CargoModify struct {
	Description     *string
	Weight          *float64
	Volume          *float64
	PickupAddress   *string
	DeliveryAddress *string
	ClientID        *int64
	RecipientID     *int64
}
