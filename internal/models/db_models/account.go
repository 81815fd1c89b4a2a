package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"default:user"`

	Trips []Trip
}
