package ctdf

// DataSourceReference marks a record as having been built from a third party provider
type DataSourceReference struct {
	Provider   string `json:"provider" groups:"detailed"`
	Network    string `json:"network" groups:"detailed"`
	Identifier string `json:"identifier" groups:"detailed"`
}
