package teams

// Team pairs the full name an upstream feed uses with the canonical code that
// joins odds, lineups and standings together.
type Team struct {
	Name string `json:"name"`
	Code string `json:"code"`
}
