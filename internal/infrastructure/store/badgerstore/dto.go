package badgerstore

import (
	"encoding/json"
	"time"

	"github.com/goldior/backend/internal/domain"
)

// Stored representations are decoupled from the domain types so the domain
// can evolve without silently changing what is on disk.

type productDTO struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Keynotes     []keynoteDTO  `json:"keynotes"`
	CapacityInML []capacityDTO `json:"capacityInML"`
}

type keynoteDTO struct {
	Name string `json:"name"`
}

type capacityDTO struct {
	Volume int `json:"volume"`
	Price  int `json:"price"`
}

type userDTO struct {
	ID             string       `json:"id"`
	Username       string       `json:"username"`
	Gender         string       `json:"gender"`
	Email          string       `json:"email"`
	LastLoggedInAt time.Time    `json:"lastLoggedInAt"`
	IsAdmin        bool         `json:"isAdmin"`
	Addresses      []addressDTO `json:"addresses"`
	Favourites     []string     `json:"favourites"`
}

type addressDTO struct {
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Zipcode     string `json:"zipcode"`
}

func marshalProduct(p *domain.Product) ([]byte, error) {
	dto := productDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
	}
	for _, k := range p.Keynotes {
		dto.Keynotes = append(dto.Keynotes, keynoteDTO{Name: k.Name})
	}
	for _, c := range p.CapacityInML {
		dto.CapacityInML = append(dto.CapacityInML, capacityDTO{Volume: c.Volume, Price: c.Price})
	}
	return json.Marshal(dto)
}

func unmarshalProduct(data []byte) (domain.Product, error) {
	var dto productDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return domain.Product{}, err
	}

	product := domain.Product{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
	}
	for _, k := range dto.Keynotes {
		product.Keynotes = append(product.Keynotes, domain.Keynote{Name: k.Name})
	}
	for _, c := range dto.CapacityInML {
		product.CapacityInML = append(product.CapacityInML, domain.CapacityOption{Volume: c.Volume, Price: c.Price})
	}
	return product, nil
}

func marshalUser(u *domain.User) ([]byte, error) {
	dto := userDTO{
		ID:             u.ID,
		Username:       u.Username,
		Gender:         u.Gender,
		Email:          u.Email,
		LastLoggedInAt: u.LastLoggedInAt,
		IsAdmin:        u.IsAdmin,
		Favourites:     u.Favourites,
	}
	for _, a := range u.Addresses {
		dto.Addresses = append(dto.Addresses, addressDTO(a))
	}
	return json.Marshal(dto)
}

func unmarshalUser(data []byte) (*domain.User, error) {
	var dto userDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:             dto.ID,
		Username:       dto.Username,
		Gender:         dto.Gender,
		Email:          dto.Email,
		LastLoggedInAt: dto.LastLoggedInAt,
		IsAdmin:        dto.IsAdmin,
		Favourites:     dto.Favourites,
	}
	for _, a := range dto.Addresses {
		user.Addresses = append(user.Addresses, domain.Address(a))
	}
	return user, nil
}
