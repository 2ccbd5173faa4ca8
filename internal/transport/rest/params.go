package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/jacwu/toy-store/internal/domain"
)

// pathID parses a numeric path variable. ok is false when the variable is
// missing or not an integer.
func pathID(r *http.Request, name string) (id int64, ok bool) {
	raw := mux.Vars(r)[name]
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

type toyTypeDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        *string `json:"icon,omitempty"`
}

type toyDTO struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	DetailDescription string      `json:"detailDescription"`
	Price             float64     `json:"price"`
	ToyTypeID         int64       `json:"toyTypeId"`
	ToyType           *toyTypeDTO `json:"toyType,omitempty"`
}

type commentDTO struct {
	ID        int64     `json:"id"`
	ToyID     int64     `json:"toyId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

type userDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func toToyTypeDTO(t domain.ToyType) toyTypeDTO {
	return toyTypeDTO{ID: t.ID, Name: t.Name, Description: t.Description, Icon: t.Icon}
}

func toToyDTO(t domain.ToyWithType) toyDTO {
	dto := toyDTO{
		ID:                t.ID,
		Name:              t.Name,
		Description:       t.Description,
		DetailDescription: t.DetailDescription,
		Price:             t.Price,
		ToyTypeID:         t.ToyTypeID,
	}
	if t.Type != nil {
		tt := toToyTypeDTO(*t.Type)
		dto.ToyType = &tt
	}
	return dto
}

func toCommentDTO(c domain.Comment) commentDTO {
	return commentDTO{
		ID:        c.ID,
		ToyID:     c.ToyID,
		Author:    c.Author,
		Content:   c.Content,
		Rating:    c.Rating,
		CreatedAt: c.CreatedAt.UTC(),
	}
}

func toUserDTO(u domain.User) userDTO {
	return userDTO{ID: u.ID, Username: u.Username}
}
