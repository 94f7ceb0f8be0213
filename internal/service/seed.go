package service

import (
	_ "embed"
	"fmt"

	"event-registration-backend/internal/database/models"
	"event-registration-backend/internal/logger"

	"gopkg.in/yaml.v3"
)

//go:embed seed_fixtures.yaml
var seedFixtures []byte

type seedData struct {
	SoloEvents []string `yaml:"solo_events"`
	TeamEvents []struct {
		Name  string   `yaml:"name"`
		Teams []string `yaml:"teams"`
	} `yaml:"team_events"`
}

// SeedFixtures loads the bundled event fixtures. Events are upserted by
// their (name, type) natural key and teams by (name, event), so repeated
// calls are idempotent and never duplicate rows.
func (s *EventService) SeedFixtures() error {
	var data seedData
	if err := yaml.Unmarshal(seedFixtures, &data); err != nil {
		return fmt.Errorf("failed to parse seed fixtures: %w", err)
	}

	for _, name := range data.SoloEvents {
		event := &models.Event{Name: name, Type: models.EventTypeSolo}
		if err := s.eventRepo.UpsertByNameAndType(event); err != nil {
			return fmt.Errorf("failed to seed solo event %q: %w", name, err)
		}
	}

	teamCount := 0
	for _, fixture := range data.TeamEvents {
		event := &models.Event{Name: fixture.Name, Type: models.EventTypeTeam}
		if err := s.eventRepo.UpsertByNameAndType(event); err != nil {
			return fmt.Errorf("failed to seed team event %q: %w", fixture.Name, err)
		}
		for _, teamName := range fixture.Teams {
			team := &models.Team{Name: teamName, EventID: event.ID}
			if err := s.teamRepo.UpsertByNameAndEvent(team); err != nil {
				return fmt.Errorf("failed to seed team %q: %w", teamName, err)
			}
			teamCount++
		}
	}

	logger.New().Infof("Seeded %d solo events, %d team events, %d teams",
		len(data.SoloEvents), len(data.TeamEvents), teamCount)
	return nil
}
