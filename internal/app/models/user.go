package models

type User struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
	Email     string `json:"email" bson:"email"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	Location  string `json:"location,omitempty" bson:"location,omitempty"`
	Title     string `json:"title,omitempty" bson:"title,omitempty"`
	Company   string `json:"company,omitempty" bson:"company,omitempty"`
	Avatar    string `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Bio       string `json:"bio,omitempty" bson:"bio,omitempty"`

	TimeModel `bson:",inline"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
