package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role classifies a member of the alumni network.
type Role string

const (
	RoleAlumni  Role = "Alumni"
	RoleStudent Role = "Student"
	RoleFaculty Role = "Faculty"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAlumni, RoleStudent, RoleFaculty:
		return true
	}
	return false
}

// RequestEntry is one element of a user's request or connection list.
// Lists are kept most-recent-first.
type RequestEntry struct {
	User primitive.ObjectID `json:"user" bson:"user"`
	Date time.Time          `json:"date" bson:"date"`
}

type User struct {
	Id                     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name                   string             `json:"name" bson:"name"`
	Email                  string             `json:"email" bson:"email"`
	Password               string             `json:"-" bson:"password"`
	ProfilePicture         string             `json:"profilePicture" bson:"profilePicture"`
	HeadLine               string             `json:"headline" bson:"headline"`
	Bio                    string             `json:"bio" bson:"bio"`
	Website                string             `json:"website" bson:"website"`
	Linkedin               string             `json:"linkedin" bson:"linkedin"`
	Github                 string             `json:"github" bson:"github"`
	Twitter                string             `json:"twitter" bson:"twitter"`
	Skills                 []string           `json:"skills" bson:"skills"`
	Certifications         []string           `json:"certifications" bson:"certifications"`
	Interests              []string           `json:"interests" bson:"interests"`
	Experience             []Experience       `json:"experience" bson:"experience"`
	Education              []Education        `json:"education" bson:"education"`
	Projects               []PortfolioProject `json:"projects" bson:"projects"`
	Role                   Role               `json:"role" bson:"role"`
	IsEnrolledInMentorship bool               `json:"isEnrolledInMentorship" bson:"isEnrolledInMentorship"`
	Date                   time.Time          `json:"date" bson:"date"`
	SentRequests           []RequestEntry     `json:"sentRequests" bson:"sentRequests"`
	ReceivedRequests       []RequestEntry     `json:"receivedRequests" bson:"receivedRequests"`
	Connections            []RequestEntry     `json:"connections" bson:"connections"`
}

type Experience struct {
	Title       string    `json:"title" bson:"title"`
	Company     string    `json:"company" bson:"company"`
	Location    string    `json:"location" bson:"location"`
	From        time.Time `json:"from" bson:"from"`
	To          time.Time `json:"to" bson:"to"`
	Current     bool      `json:"current" bson:"current"`
	Description string    `json:"description" bson:"description"`
}

type Education struct {
	Degree       string    `json:"degree" bson:"degree"`
	Institution  string    `json:"institution" bson:"institution"`
	FieldOfStudy string    `json:"fieldOfStudy" bson:"fieldOfStudy"`
	From         time.Time `json:"from" bson:"from"`
	To           time.Time `json:"to" bson:"to"`
	Current      bool      `json:"current" bson:"current"`
	Description  string    `json:"description" bson:"description"`
}

// PortfolioProject is a profile showcase entry, distinct from fundraising projects.
type PortfolioProject struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	ProjectURL  string `json:"projectUrl" bson:"projectUrl"`
	GithubURL   string `json:"githubUrl" bson:"githubUrl"`
}

// UserDto is the trimmed shape embedded in listings and request views.
type UserDto struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	Name           string             `json:"name" bson:"name"`
	ProfilePicture string             `json:"profilePicture" bson:"profilePicture"`
	Headline       string             `json:"headline,omitempty" bson:"headline"`
	Role           Role               `json:"role,omitempty" bson:"role"`
}

// Dto converts a full user document to its listing shape.
func (u *User) Dto() UserDto {
	return UserDto{
		ID:             u.Id,
		Name:           u.Name,
		ProfilePicture: u.ProfilePicture,
		Headline:       u.HeadLine,
		Role:           u.Role,
	}
}

// HasConnection reports whether id is in the user's connections list.
func (u *User) HasConnection(id primitive.ObjectID) bool {
	return containsEntry(u.Connections, id)
}

// HasSentRequest reports whether the user has a pending request to id.
func (u *User) HasSentRequest(id primitive.ObjectID) bool {
	return containsEntry(u.SentRequests, id)
}

// HasReceivedRequest reports whether the user has a pending request from id.
func (u *User) HasReceivedRequest(id primitive.ObjectID) bool {
	return containsEntry(u.ReceivedRequests, id)
}

func containsEntry(entries []RequestEntry, id primitive.ObjectID) bool {
	for _, e := range entries {
		if e.User == id {
			return true
		}
	}
	return false
}
