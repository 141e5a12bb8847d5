package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pawfinder/adoption-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	firstName string
	lastName  string
	email     string
	password  string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		firstName: "Test",
		lastName:  "User",
		email:     fmt.Sprintf("testuser_%s@example.com", suffix),
		password:  "testpassword123",
	}
}

// WithName sets the first and last name
func (b *UserBuilder) WithName(first, last string) *UserBuilder {
	b.firstName = first
	b.lastName = last
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		FirstName:    b.firstName,
		LastName:     b.lastName,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		JoinedAt:     time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	Token string `json:"token"`
	User  struct {
		ID        string `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	} `json:"user"`
}

// BuildAndAuthenticate creates a user via the API and returns the user and token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"firstName": b.firstName,
		"lastName":  b.lastName,
		"email":     b.email,
		"password":  b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.URL("/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(authResp.User.ID)
	user := &domain.User{
		ID:        userID,
		FirstName: authResp.User.FirstName,
		LastName:  authResp.User.LastName,
		Email:     authResp.User.Email,
	}

	return user, authResp.Token
}

// CenterBuilder creates test adoption centers with a builder pattern
type CenterBuilder struct {
	name    string
	address string
	city    string
	state   string
	phone   string
	breeds  []string
	addedBy uuid.UUID
}

// NewCenterBuilder creates a new CenterBuilder with default values
func NewCenterBuilder() *CenterBuilder {
	return &CenterBuilder{
		name:    fmt.Sprintf("Center %s", uuid.New().String()[:8]),
		address: "123 Main St",
		city:    "Springfield",
		state:   "IL",
		phone:   "555-0100",
		breeds:  []string{"labrador"},
	}
}

// WithLocation sets the city and state
func (b *CenterBuilder) WithLocation(city, state string) *CenterBuilder {
	b.city = city
	b.state = state
	return b
}

// WithBreeds sets the breeds list
func (b *CenterBuilder) WithBreeds(breeds ...string) *CenterBuilder {
	b.breeds = breeds
	return b
}

// WithAddedBy sets the creator reference
func (b *CenterBuilder) WithAddedBy(userID uuid.UUID) *CenterBuilder {
	b.addedBy = userID
	return b
}

// Build creates the center in the database
func (b *CenterBuilder) Build(t *testing.T, db *gorm.DB) *domain.AdoptionCenter {
	t.Helper()

	addedBy := b.addedBy
	if addedBy == uuid.Nil {
		user, _ := NewUserBuilder().Build(t, db)
		addedBy = user.ID
	}

	center := &domain.AdoptionCenter{
		ID:        uuid.New(),
		Name:      b.name,
		Address:   b.address,
		City:      b.city,
		State:     b.state,
		Phone:     b.phone,
		Breeds:    b.breeds,
		AddedBy:   addedBy,
		CreatedAt: time.Now(),
	}

	if err := db.Create(center).Error; err != nil {
		t.Fatalf("failed to create center: %v", err)
	}

	return center
}

// CommentBuilder creates test comments with a builder pattern
type CommentBuilder struct {
	breedID   string
	content   string
	userID    uuid.UUID
	userName  string
	createdAt time.Time
}

// NewCommentBuilder creates a new CommentBuilder with default values
func NewCommentBuilder() *CommentBuilder {
	return &CommentBuilder{
		breedID:   "labrador",
		content:   "Such a friendly breed",
		userName:  "Test User",
		createdAt: time.Now(),
	}
}

// WithBreedID sets the breed identifier
func (b *CommentBuilder) WithBreedID(breedID string) *CommentBuilder {
	b.breedID = breedID
	return b
}

// WithContent sets the comment body
func (b *CommentBuilder) WithContent(content string) *CommentBuilder {
	b.content = content
	return b
}

// WithAuthor sets the author reference and snapshot name
func (b *CommentBuilder) WithAuthor(userID uuid.UUID, userName string) *CommentBuilder {
	b.userID = userID
	b.userName = userName
	return b
}

// WithCreatedAt sets the creation timestamp, useful for ordering tests
func (b *CommentBuilder) WithCreatedAt(ts time.Time) *CommentBuilder {
	b.createdAt = ts
	return b
}

// Build creates the comment in the database
func (b *CommentBuilder) Build(t *testing.T, db *gorm.DB) *domain.Comment {
	t.Helper()

	userID := b.userID
	if userID == uuid.Nil {
		user, _ := NewUserBuilder().Build(t, db)
		userID = user.ID
	}

	comment := &domain.Comment{
		ID:        uuid.New(),
		BreedID:   b.breedID,
		Content:   b.content,
		UserID:    userID,
		UserName:  b.userName,
		CreatedAt: b.createdAt,
	}

	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}

	return comment
}
