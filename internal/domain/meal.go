package domain

// Meal is a single nutrition entry. Many can share the same date.
type Meal struct {
	ID      string  `json:"id"`
	Date    string  `json:"date"`
	Name    string  `json:"name"`
	Kcal    float64 `json:"kcal"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}
