package models

// User defines the structure for a registered player
type User struct {
	UserID     string `dynamodbav:"userId" json:"userId"`
	FullName   string `dynamodbav:"fullName" json:"fullName"`
	EmailID    string `dynamodbav:"emailId" json:"emailId"`
	Password   string `dynamodbav:"password" json:"-"`
	Birthdate  string `dynamodbav:"birthdate" json:"birthdate"`
	Level      string `dynamodbav:"level" json:"level"`
	Photo      string `dynamodbav:"photo,omitempty" json:"photo,omitempty"`
	IsVerified bool   `dynamodbav:"isVerified" json:"isVerified"`
}
