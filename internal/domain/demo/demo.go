// Package demo serves the sample advertisements screen. Nothing here reaches the backend:
// the fixture is loaded once and edits stay in the process.
package demo

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"
	"gopkg.in/yaml.v3"
)

//go:embed advertisements.yaml
var fixture []byte

var Cities = []string{"London", "Paris", "New York", "Tokyo"}

var Statuses = []string{"draft", "pending", "approved", "published", "rejected", "expired", "sold"}

type Advertisement struct {
	ID             int64     `json:"id" yaml:"id"`
	Title          string    `json:"title" yaml:"title"`
	Description    string    `json:"description" yaml:"description"`
	Price          float64   `json:"price" yaml:"price"`
	City           string    `json:"city" yaml:"city"`
	Latitude       float64   `json:"latitude" yaml:"latitude"`
	Longitude      float64   `json:"longitude" yaml:"longitude"`
	Address        string    `json:"address" yaml:"address"`
	CategoryName   string    `json:"category_name" yaml:"category_name"`
	ActivityName   string    `json:"activity_name" yaml:"activity_name"`
	ConditionName  string    `json:"condition_name" yaml:"condition_name"`
	AgeName        string    `json:"age_name" yaml:"age_name"`
	GenderName     string    `json:"gender_name" yaml:"gender_name"`
	SizeName       string    `json:"size_name" yaml:"size_name"`
	ColorName      string    `json:"color_name" yaml:"color_name"`
	Status         string    `json:"status" yaml:"status"`
	ViewsCount     int       `json:"views_count" yaml:"views_count"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
	UserName       string    `json:"user_name" yaml:"user_name"`
	LocationRadius int       `json:"location_radius" yaml:"location_radius"`
}

func Fixture() ([]Advertisement, error) {
	var ads []Advertisement
	if err := yaml.Unmarshal(fixture, &ads); err != nil {
		return nil, fmt.Errorf("failed to decode demo advertisements: %w", err)
	}
	return ads, nil
}

type Criteria struct {
	Search string
	City   string
	Status string
}

// Filter keeps the ads whose title, description or user name contain Search
// (case-insensitive) and whose city and status equal City and Status.
// Empty criteria match everything.
func Filter(ads []Advertisement, c Criteria) []Advertisement {
	search := strings.ToLower(c.Search)
	out := make([]Advertisement, 0, len(ads))
	for _, ad := range ads {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(ad.Title), search) ||
			strings.Contains(strings.ToLower(ad.Description), search) ||
			strings.Contains(strings.ToLower(ad.UserName), search)
		matchesCity := c.City == "" || ad.City == c.City
		matchesStatus := c.Status == "" || ad.Status == c.Status

		if matchesSearch && matchesCity && matchesStatus {
			out = append(out, ad)
		}
	}
	return out
}

type Store struct {
	mu     sync.RWMutex
	ads    []Advertisement
	nextID int64
}

func NewStore() (*Store, error) {
	ads, err := Fixture()
	if err != nil {
		return nil, err
	}
	s := &Store{ads: ads}
	for _, ad := range ads {
		s.nextID = max(s.nextID, ad.ID)
	}
	return s, nil
}

// List filters and pages in memory, answering like a paginated list endpoint.
func (s *Store) List(_ context.Context, q entity.ListQuery) (entity.Page, error) {
	s.mu.RLock()
	filtered := Filter(s.ads, Criteria{Search: q.Search, City: q.Filters["city"], Status: q.Filters["status"]})
	s.mu.RUnlock()

	from, to := q.Window(len(filtered))

	items := make([]entity.Record, 0, to-from)
	for _, ad := range filtered[from:to] {
		rec, err := toRecord(ad)
		if err != nil {
			return entity.Page{}, err
		}
		items = append(items, rec)
	}
	return entity.Page{Items: items, Total: len(filtered)}, nil
}

func (s *Store) Get(_ context.Context, id string) (entity.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, err := s.index(id)
	if err != nil {
		return nil, err
	}
	return toRecord(s.ads[i])
}

func (s *Store) Create(_ context.Context, rec entity.Record) (entity.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ad := Advertisement{Status: "draft", UserName: "Demo User", LocationRadius: 5}
	if err := merge(&ad, rec); err != nil {
		return nil, err
	}
	s.nextID++
	ad.ID = s.nextID
	ad.CreatedAt = time.Now().UTC()
	s.ads = append(s.ads, ad)
	return toRecord(ad)
}

func (s *Store) Update(_ context.Context, id string, rec entity.Record) (entity.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.index(id)
	if err != nil {
		return nil, err
	}
	ad := s.ads[i]
	if err := merge(&ad, rec); err != nil {
		return nil, err
	}
	ad.ID = s.ads[i].ID
	s.ads[i] = ad
	return toRecord(ad)
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.index(id)
	if err != nil {
		return err
	}
	s.ads = slices.Delete(s.ads, i, i+1)
	return nil
}

func (s *Store) index(id string) (int, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, errors.NewDomainError(errors.ErrNoDataFound, "demo advertisement %q", id)
	}
	i := slices.IndexFunc(s.ads, func(ad Advertisement) bool { return ad.ID == n })
	if i < 0 {
		return 0, errors.NewDomainError(errors.ErrNoDataFound, "demo advertisement %d", n)
	}
	return i, nil
}

func toRecord(ad Advertisement) (entity.Record, error) {
	b, err := json.Marshal(ad)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var rec entity.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func merge(ad *Advertisement, rec entity.Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, ad); err != nil {
		return errors.WrapIntoDomainError(err, errors.ErrValidation, "invalid demo advertisement")
	}
	return nil
}
