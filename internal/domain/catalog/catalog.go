package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var ErrInvalidPriority = errors.New("invalid priority")

// ParsePriority accepts any casing and surrounding whitespace.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityHigh:
		return PriorityHigh, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityLow:
		return PriorityLow, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}

func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

type SkillRequirement struct {
	SkillID       string   `json:"skill_id" yaml:"skill"`
	RequiredLevel int      `json:"required_level" yaml:"required_level"`
	Priority      Priority `json:"priority" yaml:"priority"`
	Category      string   `json:"category" yaml:"category"`
}

type LearningResource struct {
	Title      string `json:"title" yaml:"title"`
	URL        string `json:"url" yaml:"url"`
	Platform   string `json:"platform" yaml:"platform"`
	Duration   string `json:"duration" yaml:"duration"`
	Difficulty string `json:"difficulty" yaml:"difficulty"`
}

type Role struct {
	Key          string             `json:"key" yaml:"key"`
	Requirements []SkillRequirement `json:"requirements" yaml:"requirements"`
}

// Catalog is read-only once built. Accessors hand out copies.
type Catalog struct {
	roles       []Role
	roleIndex   map[string]int
	resources   map[string][]LearningResource
	fingerprint string
}

var ErrRoleNotFound = errors.New("role not found")

// Source produces a catalog, typically once at process start.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

func New(roles []Role, resources map[string][]LearningResource) (*Catalog, error) {
	c := &Catalog{
		roles:     make([]Role, 0, len(roles)),
		roleIndex: make(map[string]int, len(roles)),
		resources: make(map[string][]LearningResource, len(resources)),
	}

	for _, r := range roles {
		key := strings.ToLower(strings.TrimSpace(r.Key))
		if key == "" {
			return nil, errors.New("role key is required")
		}
		if _, dup := c.roleIndex[key]; dup {
			return nil, fmt.Errorf("duplicate role %q", key)
		}
		reqs := make([]SkillRequirement, len(r.Requirements))
		for i, req := range r.Requirements {
			if err := req.Validate(); err != nil {
				return nil, fmt.Errorf("role %q requirement %d: %w", key, i, err)
			}
			reqs[i] = req
		}
		c.roleIndex[key] = len(c.roles)
		c.roles = append(c.roles, Role{Key: key, Requirements: reqs})
	}

	for skillID, list := range resources {
		if strings.TrimSpace(skillID) == "" {
			return nil, errors.New("resource skill id is required")
		}
		c.resources[skillID] = append([]LearningResource(nil), list...)
	}

	c.fingerprint = c.computeFingerprint()
	return c, nil
}

func (r SkillRequirement) Validate() error {
	if strings.TrimSpace(r.SkillID) == "" {
		return errors.New("skill id is required")
	}
	if r.RequiredLevel < 0 || r.RequiredLevel > 100 {
		return fmt.Errorf("required level %d out of range 0-100", r.RequiredLevel)
	}
	if !r.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, r.Priority)
	}
	return nil
}

// Roles returns role keys in declaration order.
func (c *Catalog) Roles() []string {
	keys := make([]string, len(c.roles))
	for i, r := range c.roles {
		keys[i] = r.Key
	}
	return keys
}

func (c *Catalog) Requirements(role string) ([]SkillRequirement, error) {
	idx, ok := c.roleIndex[strings.ToLower(strings.TrimSpace(role))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRoleNotFound, role)
	}
	return append([]SkillRequirement(nil), c.roles[idx].Requirements...), nil
}

// Resources never returns nil; unknown skill ids yield an empty list.
func (c *Catalog) Resources(skillID string) []LearningResource {
	list := c.resources[skillID]
	out := make([]LearningResource, len(list))
	copy(out, list)
	return out
}

// ResourceSkillIDs lists the skill ids that have resources, sorted.
func (c *Catalog) ResourceSkillIDs() []string {
	return slices.Sorted(maps.Keys(c.resources))
}

// Fingerprint identifies the catalog content, stable across processes.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

func (c *Catalog) computeFingerprint() string {
	h := sha256.New()
	for _, r := range c.roles {
		fmt.Fprintf(h, "role:%s\n", r.Key)
		for _, req := range r.Requirements {
			fmt.Fprintf(h, "req:%s|%d|%s|%s\n", req.SkillID, req.RequiredLevel, req.Priority, req.Category)
		}
	}
	for _, id := range c.ResourceSkillIDs() {
		fmt.Fprintf(h, "res:%s\n", id)
		for _, lr := range c.resources[id] {
			fmt.Fprintf(h, "%s|%s|%s|%s|%s\n", lr.Title, lr.URL, lr.Platform, lr.Duration, lr.Difficulty)
		}
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
