package models

type Poll struct {
	BaseModel

	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsActive    bool   `json:"isActive"`
	AccountID   uint   `json:"createdBy"`

	Ratings []PollRating `json:"ratings" gorm:"foreignKey:PollID"`
}

type PollMetric struct {
	TotalRatings  int64         `json:"totalRatings"`
	AverageRating string        `json:"averageRating"`
	Distribution  map[int]int64 `json:"distribution"`
}

type PollRating struct {
	BaseModel

	Rating  int    `json:"rating"`
	Comment string `json:"comment"`

	PollID    uint `json:"pollId"`
	AccountID uint `json:"userId"`
}
