package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/config"
	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/domain/repository"
	"github.com/fuel-route-service/internal/worker"
)

// Колонки файла выгрузки OPIS
const (
	colOPISID  = "OPIS Truckstop ID"
	colName    = "Truckstop Name"
	colAddress = "Address"
	colCity    = "City"
	colState   = "State"
	colRackID  = "Rack ID"
	colPrice   = "Retail Price"
)

// StationImportWorker - воркер загрузки станций из CSV-выгрузки OPIS.
// Координаты станций в выгрузке отсутствуют, поэтому каждая станция
// геокодируется; интервал между запросами ограничен GeocodeInterval.
type StationImportWorker struct {
	*worker.BaseWorker
	stationRepo   repository.StationRepository
	geocodingRepo repository.GeocodingRepository
	cfg           config.ImporterConfig
}

// NewStationImportWorker - создание нового StationImportWorker
func NewStationImportWorker(
	stationRepo repository.StationRepository,
	geocodingRepo repository.GeocodingRepository,
	cfg config.ImporterConfig,
	logger *zap.Logger,
) *StationImportWorker {
	return &StationImportWorker{
		BaseWorker:    worker.NewBaseWorker("station-importer", logger),
		stationRepo:   stationRepo,
		geocodingRepo: geocodingRepo,
		cfg:           cfg,
	}
}

// Start выполняет один полный проход импорта и завершается
func (w *StationImportWorker) Start(ctx context.Context) error {
	file, err := os.Open(w.cfg.CSVPath)
	if err != nil {
		return fmt.Errorf("failed to open stations file: %w", err)
	}
	defer file.Close()

	records, err := ParseStationsCSV(file)
	if err != nil {
		return fmt.Errorf("failed to parse stations file: %w", err)
	}

	w.Logger().Info("Parsed stations file",
		zap.String("path", w.cfg.CSVPath),
		zap.Int("unique_stations", len(records)))

	if w.cfg.TruncateFirst {
		if err := w.stationRepo.Truncate(ctx); err != nil {
			return fmt.Errorf("failed to truncate stations: %w", err)
		}
		w.Logger().Info("Existing stations removed before import")
	}

	ticker := time.NewTicker(w.cfg.GeocodeInterval)
	defer ticker.Stop()

	imported, skipped := 0, 0
	for _, rec := range records {
		select {
		case <-ctx.Done():
			w.Logger().Warn("Import interrupted",
				zap.Int("imported", imported),
				zap.Int("skipped", skipped))
			return ctx.Err()
		case <-w.StopChan():
			w.Logger().Warn("Import stopped",
				zap.Int("imported", imported),
				zap.Int("skipped", skipped))
			return nil
		case <-ticker.C:
		}

		point, err := w.geocodeStation(ctx, rec)
		if err != nil {
			w.Logger().Warn("Failed to geocode station, skipping",
				zap.String("opis_id", rec.OPISID),
				zap.String("name", rec.Name),
				zap.Error(err))
			skipped++
			continue
		}

		station := rec
		station.Lat = point.Lat
		station.Lon = point.Lon
		if err := w.stationRepo.Upsert(ctx, &station); err != nil {
			w.Logger().Error("Failed to upsert station",
				zap.String("opis_id", rec.OPISID),
				zap.Error(err))
			skipped++
			continue
		}
		imported++
	}

	w.Logger().Info("Station import finished",
		zap.Int("imported", imported),
		zap.Int("skipped", skipped))
	return nil
}

// geocodeStation геокодирует станцию: сначала полный адрес,
// затем запасной вариант город+штат
func (w *StationImportWorker) geocodeStation(ctx context.Context, s domain.Station) (*domain.Point, error) {
	query := fmt.Sprintf("%s, %s, %s", s.Name, s.City, s.State)
	point, err := w.geocodingRepo.Geocode(ctx, query)
	if err == nil {
		return point, nil
	}

	fallback := fmt.Sprintf("%s, %s", s.City, s.State)
	return w.geocodingRepo.Geocode(ctx, fallback)
}

// ParseStationsCSV читает выгрузку OPIS и возвращает станции без координат.
// Дубликаты по OPIS ID схлопываются, остаётся строка с минимальной ценой.
func ParseStationsCSV(r io.Reader) ([]domain.Station, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}
	for _, required := range []string{colOPISID, colName, colCity, colState, colPrice} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	field := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	byID := make(map[string]domain.Station)
	order := make([]string, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		opisID := field(row, colOPISID)
		if opisID == "" {
			continue
		}

		price, err := strconv.ParseFloat(field(row, colPrice), 64)
		if err != nil || price <= 0 {
			continue
		}

		station := domain.Station{
			OPISID:         opisID,
			Name:           field(row, colName),
			Address:        field(row, colAddress),
			City:           field(row, colCity),
			State:          field(row, colState),
			RackID:         field(row, colRackID),
			PricePerGallon: price,
		}

		existing, seen := byID[opisID]
		if !seen {
			order = append(order, opisID)
			byID[opisID] = station
		} else if price < existing.PricePerGallon {
			byID[opisID] = station
		}
	}

	stations := make([]domain.Station, 0, len(byID))
	for _, id := range order {
		stations = append(stations, byID[id])
	}
	return stations, nil
}
