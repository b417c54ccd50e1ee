package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/spacedex/spacedex/internal/models"
)

// SectionStatus describes the outcome of one dependent section of a launch
// detail view.
type SectionStatus string

const (
	SectionLoaded SectionStatus = "loaded"
	SectionFailed SectionStatus = "failed"
	SectionEmpty  SectionStatus = "empty"
)

// Section carries the per-section outcome. A failed section is local: it
// never cascades into its siblings and can be retried by re-requesting the
// detail view.
type Section struct {
	Status SectionStatus `json:"status"`
	Error  string        `json:"error,omitempty"`
}

// Detail is the composed launch view: the launch itself plus its rocket,
// launchpad, crew and payloads, each with an independent section status, and
// the composite image gallery.
type Detail struct {
	Launch *models.Launch `json:"launch"`

	Rocket        *models.Rocket `json:"rocket,omitempty"`
	RocketSection Section        `json:"rocketSection"`

	Launchpad        *models.Launchpad `json:"launchpad,omitempty"`
	LaunchpadSection Section           `json:"launchpadSection"`

	Crew        []models.Crew `json:"crew,omitempty"`
	CrewSection Section       `json:"crewSection"`

	Payloads        []models.Payload `json:"payloads,omitempty"`
	PayloadsSection Section          `json:"payloadsSection"`

	Gallery []string `json:"gallery"`
}

// Compose fetches the launch and then its rocket, launchpad, crew and
// payloads concurrently. Only a failed launch fetch is terminal; every other
// failure is confined to its section. A launch with no crew or payloads gets
// an empty section without any remote call.
func (s *Service) Compose(ctx context.Context, id string) (*Detail, error) {
	start := time.Now()

	launch, err := s.client.GetLaunch(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &Detail{Launch: launch}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		rocket, err := s.client.GetRocket(ctx, launch.Rocket)
		if err != nil {
			detail.RocketSection = Section{Status: SectionFailed, Error: err.Error()}
			return
		}
		detail.Rocket = rocket
		detail.RocketSection = Section{Status: SectionLoaded}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		pad, err := s.client.GetLaunchpad(ctx, launch.Launchpad)
		if err != nil {
			detail.LaunchpadSection = Section{Status: SectionFailed, Error: err.Error()}
			return
		}
		detail.Launchpad = pad
		detail.LaunchpadSection = Section{Status: SectionLoaded}
	}()

	if len(launch.Crew) == 0 {
		detail.CrewSection = Section{Status: SectionEmpty}
	} else {
		wg.Add(1)
		go func() {
			defer wg.Done()
			crew, err := s.client.GetCrewMembers(ctx, launch.Crew)
			if err != nil {
				detail.CrewSection = Section{Status: SectionFailed, Error: err.Error()}
				return
			}
			detail.Crew = crew
			detail.CrewSection = Section{Status: SectionLoaded}
		}()
	}

	if len(launch.Payloads) == 0 {
		detail.PayloadsSection = Section{Status: SectionEmpty}
	} else {
		wg.Add(1)
		go func() {
			defer wg.Done()
			payloads, err := s.client.GetPayloads(ctx, launch.Payloads)
			if err != nil {
				detail.PayloadsSection = Section{Status: SectionFailed, Error: err.Error()}
				return
			}
			detail.Payloads = payloads
			detail.PayloadsSection = Section{Status: SectionLoaded}
		}()
	}

	wg.Wait()

	detail.Gallery = composeGallery(detail)

	if s.metrics != nil {
		s.metrics.ComposeDuration.Observe(time.Since(start).Seconds())
	}
	s.log.Debug("Launch detail composed",
		"launch", launch.ID,
		"rocket", detail.RocketSection.Status,
		"launchpad", detail.LaunchpadSection.Status,
		"crew", detail.CrewSection.Status,
		"payloads", detail.PayloadsSection.Status)

	return detail, nil
}

// composeGallery concatenates the image lists of the loaded entities in a
// fixed order: launch flickr originals, then rocket flickr images, then
// launchpad large images. The order is part of the contract; completion
// order of the fetches never leaks into it.
func composeGallery(detail *Detail) []string {
	gallery := []string{}
	gallery = append(gallery, detail.Launch.Links.Flickr.Original...)
	if detail.Rocket != nil {
		gallery = append(gallery, detail.Rocket.FlickrImages...)
	}
	if detail.Launchpad != nil {
		gallery = append(gallery, detail.Launchpad.Images.Large...)
	}
	return gallery
}
