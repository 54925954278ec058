package domain

// SupplementRecord tracks supplement intake for one date. At most one
// record exists per date; it is created lazily on first access.
type SupplementRecord struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	CreatineG float64 `json:"creatine_g"`
	Pre       bool    `json:"pre"`
	Casein    bool    `json:"casein"`
	Whey      bool    `json:"whey"`
}
