package service

import (
	"errors"
	"fmt"

	"quickbite/menu-svc/internal/domain"
)

var (
	ErrInvalidRestaurant = errors.New("invalid restaurant payload")
	ErrInvalidMenuItem   = errors.New("invalid menu item payload")
)

type RestaurantRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	UpdateRestaurant(rest *domain.Restaurant) error
	DeleteRestaurant(id int) (int64, error)
}

type MenuItemRepository interface {
	CreateMenuItem(item *domain.MenuItem) error
	ListMenuItems(restaurantID int) ([]domain.MenuItem, error)
	GetMenuItem(restaurantID, itemID int) (*domain.MenuItem, error)
	UpdateMenuItem(item *domain.MenuItem) error
	DeleteMenuItem(restaurantID, itemID int) (int64, error)
	SetAvailability(restaurantID, itemID int, available bool) error
}

type RestaurantServiceInterface interface {
	Create(rest *domain.Restaurant) error
	List() ([]domain.Restaurant, error)
	Get(id int) (*domain.Restaurant, error)
	Update(rest *domain.Restaurant) error
	Delete(id int) (int64, error)
}

type MenuServiceInterface interface {
	Create(item *domain.MenuItem) error
	List(restaurantID int) ([]domain.MenuItem, error)
	Get(restaurantID, itemID int) (*domain.MenuItem, error)
	Update(item *domain.MenuItem) error
	Delete(restaurantID, itemID int) (int64, error)
	SetAvailability(restaurantID, itemID int, available bool) error
}

type RestaurantService struct {
	repo RestaurantRepository
}

func NewRestaurantService(repo RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

func (s *RestaurantService) Create(rest *domain.Restaurant) error {
	if rest.Name == "" {
		return ErrInvalidRestaurant
	}
	return s.repo.CreateRestaurant(rest)
}

func (s *RestaurantService) List() ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants()
}

func (s *RestaurantService) Get(id int) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(id)
}

func (s *RestaurantService) Update(rest *domain.Restaurant) error {
	if rest.Name == "" {
		return ErrInvalidRestaurant
	}
	return s.repo.UpdateRestaurant(rest)
}

func (s *RestaurantService) Delete(id int) (int64, error) {
	return s.repo.DeleteRestaurant(id)
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)

type MenuService struct {
	repo MenuItemRepository
}

func NewMenuService(repo MenuItemRepository) *MenuService {
	return &MenuService{repo: repo}
}

// validateGroups rejects malformed customization templates before they reach
// storage; the cart relies on every group having a known type and named
// options.
func validateGroups(groups []domain.CustomizationGroup) error {
	for _, group := range groups {
		if group.Name == "" {
			return fmt.Errorf("%w: customization group without a name", ErrInvalidMenuItem)
		}
		if group.Type != domain.GroupSingle && group.Type != domain.GroupMulti {
			return fmt.Errorf("%w: group %q has unknown type %q", ErrInvalidMenuItem, group.Name, group.Type)
		}
		if len(group.Options) == 0 {
			return fmt.Errorf("%w: group %q has no options", ErrInvalidMenuItem, group.Name)
		}
		for _, option := range group.Options {
			if option.Name == "" {
				return fmt.Errorf("%w: group %q has an unnamed option", ErrInvalidMenuItem, group.Name)
			}
			if option.Price < 0 {
				return fmt.Errorf("%w: option %q has a negative price", ErrInvalidMenuItem, option.Name)
			}
		}
	}
	return nil
}

func validateItem(item *domain.MenuItem) error {
	if item.RestaurantID <= 0 || item.Name == "" || item.Price < 0 {
		return ErrInvalidMenuItem
	}
	return validateGroups(item.CustomizationGroups)
}

func (s *MenuService) Create(item *domain.MenuItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if item.CustomizationGroups == nil {
		item.CustomizationGroups = []domain.CustomizationGroup{}
	}
	return s.repo.CreateMenuItem(item)
}

func (s *MenuService) List(restaurantID int) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(restaurantID)
}

func (s *MenuService) Get(restaurantID, itemID int) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(restaurantID, itemID)
}

func (s *MenuService) Update(item *domain.MenuItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	return s.repo.UpdateMenuItem(item)
}

func (s *MenuService) Delete(restaurantID, itemID int) (int64, error) {
	return s.repo.DeleteMenuItem(restaurantID, itemID)
}

func (s *MenuService) SetAvailability(restaurantID, itemID int, available bool) error {
	return s.repo.SetAvailability(restaurantID, itemID, available)
}

var _ MenuServiceInterface = (*MenuService)(nil)
