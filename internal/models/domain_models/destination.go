package domain_models

type Destination struct {
	ID          string
	Name        string
	State       string
	Region      string
	Category    string // beach | mountain | spiritual | adventure | heritage
	Description string
	Highlights  []string
	Rating      float64
	Price       int
	Trending    bool
}
