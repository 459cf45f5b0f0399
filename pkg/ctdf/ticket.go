package ctdf

type Ticket struct {
	ID      string `json:"id" groups:"basic"`
	Name    string `json:"name" groups:"basic"`
	Found   bool   `json:"found" groups:"basic"`
	Comment string `json:"comment,omitempty" groups:"basic"`
	Cost    Cost   `json:"cost" groups:"basic"`
	Links   []Link `json:"links" groups:"basic"`
}

type Cost struct {
	Value    string `json:"value" groups:"basic"`
	Currency string `json:"currency" groups:"basic"`
}
