package models

import "time"

// Region groups branches and schools geographically.
type Region struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Branch is a language-school location; courses reference one.
type Branch struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	RegionID  string    `bson:"regionId,omitempty" json:"regionId,omitempty"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// School is a partner kindergarten; kindergarten classes reference one.
type School struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	RegionID  string    `bson:"regionId,omitempty" json:"regionId,omitempty"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
