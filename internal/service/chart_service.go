package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/yakyulab/spraychart-backend-go/internal/dataset"
	"github.com/yakyulab/spraychart-backend-go/internal/models"
	"github.com/yakyulab/spraychart-backend-go/internal/repository"
)

// ErrNoImage means the field drawing is missing, which leaves nothing to
// plot the points onto.
var ErrNoImage = errors.New("background image not found")

// ChartService handles business logic for the hit chart
type ChartService struct {
	loader    *dataset.Loader
	repo      *repository.PitchRepository
	imagePath string
	logger    *logrus.Logger

	mu      sync.RWMutex
	current *datasetState

	imgMu     sync.Mutex
	imgSource string
}

// datasetState is what the service remembers about the loaded dataset
// between requests.
type datasetState struct {
	fingerprint string
	hasBalls    bool
	hasStrikes  bool
	report      models.LoadReport
}

// NewChartService creates a new chart service
func NewChartService(loader *dataset.Loader, repo *repository.PitchRepository, imagePath string, logger *logrus.Logger) *ChartService {
	return &ChartService{
		loader:    loader,
		repo:      repo,
		imagePath: imagePath,
		logger:    logger,
	}
}

// Ensure makes the store match the data directory, reloading only when
// the directory fingerprint moved. The cheap stat pass runs on every
// request, so edited sheets are picked up without a file watcher.
func (s *ChartService) Ensure() error {
	fingerprint, err := s.loader.Fingerprint()
	if err != nil {
		return err
	}

	s.mu.RLock()
	loaded := s.current != nil && s.current.fingerprint == fingerprint
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil && s.current.fingerprint == fingerprint {
		return nil
	}
	return s.loadLocked()
}

// Reload rebuilds the store unconditionally and returns the new report.
func (s *ChartService) Reload() (models.LoadReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return models.LoadReport{}, err
	}
	return s.current.report, nil
}

func (s *ChartService) loadLocked() error {
	result, err := s.loader.Load()
	if err != nil {
		return err
	}
	if err := s.repo.ReplaceAll(result.Rows); err != nil {
		return fmt.Errorf("failed to store dataset: %w", err)
	}

	s.current = &datasetState{
		fingerprint: result.Report.Fingerprint,
		hasBalls:    result.HasBalls,
		hasStrikes:  result.HasStrikes,
		report:      result.Report,
	}
	s.logger.Infof("[ChartService] Dataset ready: %d rows from %d files",
		result.Report.Rows, result.Report.Files)
	return nil
}

// Points returns the filtered chart contents
func (s *ChartService) Points(filter models.ChartFilter) (*models.ChartPointsResponse, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	s.disableAbsentCounts(&filter)

	points, err := s.repo.Query(filter)
	if err != nil {
		return nil, err
	}
	return &models.ChartPointsResponse{Points: points, Total: len(points)}, nil
}

// Summary groups the filtered rows by hit type and pitch type
func (s *ChartService) Summary(filter models.ChartFilter) (*models.ChartSummaryResponse, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	s.disableAbsentCounts(&filter)

	total, err := s.repo.Count(filter)
	if err != nil {
		return nil, err
	}
	byHitType, err := s.repo.CountByHitType(filter)
	if err != nil {
		return nil, err
	}
	byPitchType, err := s.repo.CountByPitchType(filter)
	if err != nil {
		return nil, err
	}

	return &models.ChartSummaryResponse{
		Total:       total,
		ByHitType:   byHitType,
		ByPitchType: byPitchType,
	}, nil
}

// Meta lists the filter options present in the loaded dataset
func (s *ChartService) Meta() (*models.DatasetMeta, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}

	batters, err := s.repo.Batters()
	if err != nil {
		return nil, err
	}
	games, err := s.repo.Games()
	if err != nil {
		return nil, err
	}
	hitTypes, err := s.repo.HitTypes()
	if err != nil {
		return nil, err
	}
	pitchTypes, err := s.repo.PitchTypes()
	if err != nil {
		return nil, err
	}
	ballValues, err := s.repo.BallValues()
	if err != nil {
		return nil, err
	}
	strikeValues, err := s.repo.StrikeValues()
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	state := *s.current
	s.mu.RUnlock()

	return &models.DatasetMeta{
		Batters:      batters,
		Games:        games,
		HitTypes:     hitTypes,
		PitchTypes:   pitchTypes,
		BallValues:   ballValues,
		StrikeValues: strikeValues,
		HasBalls:     state.hasBalls,
		HasStrikes:   state.hasStrikes,
		Report:       state.report,
	}, nil
}

// Layout returns the plot frame with the field drawing embedded as a
// data URI
func (s *ChartService) Layout() (*models.ChartLayout, error) {
	source, err := s.backgroundSource()
	if err != nil {
		return nil, err
	}

	layout := models.DefaultLayout()
	layout.Background = &models.ChartImage{
		Source:  source,
		X:       models.FieldImageX,
		Y:       models.FieldImageY,
		SizeX:   models.FieldImageSizeX,
		SizeY:   models.FieldImageSizeY,
		Sizing:  "stretch",
		Opacity: 1,
		Layer:   "below",
	}
	return &layout, nil
}

// backgroundSource encodes the field image once and reuses it; the file
// is fixed for the life of the process.
func (s *ChartService) backgroundSource() (string, error) {
	s.imgMu.Lock()
	defer s.imgMu.Unlock()

	if s.imgSource != "" {
		return s.imgSource, nil
	}

	data, err := os.ReadFile(s.imagePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoImage, s.imagePath)
	}
	s.imgSource = "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
	return s.imgSource, nil
}

// disableAbsentCounts drops the ball and strike predicates when the
// loaded sheets never carried those columns.
func (s *ChartService) disableAbsentCounts(filter *models.ChartFilter) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return
	}
	if !s.current.hasBalls {
		filter.Balls = nil
	}
	if !s.current.hasStrikes {
		filter.Strikes = nil
	}
}
