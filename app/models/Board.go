package models

// Property is one entry of a board layout. Type selects the space variant:
// go, property, railroad, utility, tax, chest, chance, jail, gotojail, parking.
// For tax spaces Price is the amount charged.
type Property struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Group    string `json:"group,omitempty"`
	Position int    `json:"position"`
	Price    int    `json:"price,omitempty"`
	Rent     int    `json:"rent,omitempty"`
}

type Special struct {
	Info    string `json:"info"`
	Action  string `json:"action"` // "change" - balance update, "goto" - move to payload position, "jail" - go to jail
	Payload int    `json:"payload"`
}
