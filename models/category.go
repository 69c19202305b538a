package models

// Category groups services for browsing.
type Category struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Icon string `bson:"icon" json:"icon"`
}

// CategoryCount is a category with the number of services that reference it.
type CategoryCount struct {
	Category     `bson:",inline"`
	ServiceCount int `bson:"serviceCount" json:"-"`
}

// CategoryView is the display form returned by GET /categories.
type CategoryView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count string `json:"count"`
}
