package entity

// Query запрос страницы номеров.
type Query struct {
	LoadMore  bool
	Parameter string
	TypeList  []string
	Page      int
}
