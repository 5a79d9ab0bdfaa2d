package entities

// Party - клиент или получатель груза.
type Party struct {
	ID      int64
	Name    string
	Phone   string
	Email   string
	Address string
}

type PartyModify struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}
