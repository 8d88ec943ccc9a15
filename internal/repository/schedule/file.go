package schedule

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/stagecrew/showboard/internal/config"
	domain "github.com/stagecrew/showboard/internal/domain/schedule"
)

// Repository defines persistence operations for the running order.
type Repository interface {
	Load(ctx context.Context) (*domain.Schedule, error)
	Save(ctx context.Context, sched *domain.Schedule) error
}

// ErrNotFound is returned when the schedule file does not exist yet.
var ErrNotFound = errors.New("schedule not found")

// FileRepository persists the schedule to a YAML file on disk. YAML keeps the
// file editable by stage managers outside the tooling; times are stored as
// "HH:MM" or "HH:MM:SS" strings.
type FileRepository struct {
	// path is the filesystem location of the schedule file.
	path string
	// mu protects concurrent access to the schedule file.
	mu sync.Mutex
}

// NewFileRepository creates a repository that reads/writes YAML at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the schedule from disk.
func (r *FileRepository) Load(_ context.Context) (*domain.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read schedule file: %w", err)
	}

	var file scheduleFile
	if err = yaml.Unmarshal(contents, &file); err != nil {
		return nil, fmt.Errorf("decode schedule file: %w", err)
	}

	return fromFile(&file)
}

// Save writes the schedule to disk in YAML representation.
func (r *FileRepository) Save(_ context.Context, sched *domain.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := yaml.Marshal(toFile(sched))
	if err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write schedule file: %w", err)
	}

	return nil
}

// scheduleFile is the on-disk YAML layout.
type scheduleFile struct {
	StageName string    `yaml:"stage_name"`
	Acts      []actFile `yaml:"acts"`
}

type actFile struct {
	Name           string `yaml:"name"`
	ScheduledStart string `yaml:"scheduled_start"`
	ScheduledEnd   string `yaml:"scheduled_end"`
	ActualStart    string `yaml:"actual_start,omitempty"`
	ActualEnd      string `yaml:"actual_end,omitempty"`
	Notes          string `yaml:"notes,omitempty"`
}

// fromFile converts the YAML layout into the domain model, validating every
// time string.
func fromFile(file *scheduleFile) (*domain.Schedule, error) {
	acts := make([]*domain.Act, 0, len(file.Acts))

	for i, entry := range file.Acts {
		if entry.Name == "" {
			return nil, fmt.Errorf("act %d: name is empty", i+1)
		}

		start, err := domain.ParseTimeOfDay(entry.ScheduledStart)
		if err != nil {
			return nil, fmt.Errorf("act %q: scheduled_start: %w", entry.Name, err)
		}

		end, err := domain.ParseTimeOfDay(entry.ScheduledEnd)
		if err != nil {
			return nil, fmt.Errorf("act %q: scheduled_end: %w", entry.Name, err)
		}

		act := &domain.Act{
			Name:           entry.Name,
			ScheduledStart: start,
			ScheduledEnd:   end,
			Notes:          entry.Notes,
		}

		if act.ActualStart, err = parseOptional(entry.ActualStart); err != nil {
			return nil, fmt.Errorf("act %q: actual_start: %w", entry.Name, err)
		}

		if act.ActualEnd, err = parseOptional(entry.ActualEnd); err != nil {
			return nil, fmt.Errorf("act %q: actual_end: %w", entry.Name, err)
		}

		acts = append(acts, act)
	}

	return &domain.Schedule{
		StageName: file.StageName,
		Acts:      acts,
	}, nil
}

// toFile converts the domain model into the YAML layout.
func toFile(sched *domain.Schedule) *scheduleFile {
	acts := make([]actFile, 0, len(sched.Acts))

	for _, act := range sched.Acts {
		entry := actFile{
			Name:           act.Name,
			ScheduledStart: act.ScheduledStart.String(),
			ScheduledEnd:   act.ScheduledEnd.String(),
			Notes:          act.Notes,
		}

		if act.ActualStart != nil {
			entry.ActualStart = act.ActualStart.String()
		}

		if act.ActualEnd != nil {
			entry.ActualEnd = act.ActualEnd.String()
		}

		acts = append(acts, entry)
	}

	return &scheduleFile{
		StageName: sched.StageName,
		Acts:      acts,
	}
}

func parseOptional(value string) (*domain.TimeOfDay, error) {
	if value == "" {
		return nil, nil //nolint:nilnil // Absent time is a valid state, not an error.
	}

	parsed, err := domain.ParseTimeOfDay(value)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}
