package devapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/circuna/circuna/internal/core/domain"
)

type Handler struct {
	repo UserRepository
}

func NewHandler(repo UserRepository) *Handler {
	return &Handler{repo: repo}
}

type registerRequest struct {
	PhoneNumber     string           `json:"phone_number" validate:"required,e164"`
	Name            string           `json:"name" validate:"required"`
	Location        string           `json:"location" validate:"required"`
	Email           string           `json:"email" validate:"omitempty,email"`
	Roles           []int            `json:"roles"`
	ProviderProfile *providerPayload `json:"provider_profile"`
}

type providerPayload struct {
	BusinessName string `json:"business_name" validate:"required"`
	Rating       int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

// Register creates a user, assigns its id, and echoes the created record.
func (h *Handler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	roles, err := resolveRoles(req.Roles)
	if err != nil {
		return err
	}

	user := &User{
		PhoneNumber: req.PhoneNumber,
		Name:        req.Name,
		Location:    req.Location,
		Email:       req.Email,
		Roles:       roles,
	}
	if req.ProviderProfile != nil {
		user.ProviderProfile = &ProviderProfile{
			BusinessName: req.ProviderProfile.BusinessName,
			Rating:       req.ProviderProfile.Rating,
		}
	}

	created, err := h.repo.Create(c.Request().Context(), user)
	if err != nil {
		return err
	}

	RegistrationsTotal.WithLabelValues(accountKind(created)).Inc()
	return c.JSON(http.StatusCreated, created)
}

// ByPhone serves GET /users/by-phone/:phone.
func (h *Handler) ByPhone(c echo.Context) error {
	user, err := h.repo.ByPhone(c.Request().Context(), c.Param("phone"))
	if err != nil {
		UserLookupsTotal.WithLabelValues("phone", "not_found").Inc()
		return err
	}
	UserLookupsTotal.WithLabelValues("phone", "found").Inc()
	return c.JSON(http.StatusOK, user)
}

// ByID serves GET /users/:id.
func (h *Handler) ByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	user, err := h.repo.ByID(c.Request().Context(), id)
	if err != nil {
		UserLookupsTotal.WithLabelValues("id", "not_found").Inc()
		return err
	}
	UserLookupsTotal.WithLabelValues("id", "found").Inc()
	return c.JSON(http.StatusOK, user)
}

// Roles serves the seeded role list.
func (h *Handler) Roles(c echo.Context) error {
	return c.JSON(http.StatusOK, SeedRoles)
}

// Health is the liveness probe.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func resolveRoles(ids []int) ([]domain.Role, error) {
	roles := make([]domain.Role, 0, len(ids))
	for _, id := range ids {
		found := false
		for _, r := range SeedRoles {
			if r.ID == id {
				roles = append(roles, r)
				found = true
				break
			}
		}
		if !found {
			return nil, ErrUnknownRole
		}
	}
	return roles, nil
}

func accountKind(u *User) string {
	if u.ProviderProfile != nil {
		return "provider"
	}
	return "customer"
}
