package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrWorkbookUnreadable means the uploaded file could not be parsed as
	// a spreadsheet workbook at all.
	ErrWorkbookUnreadable = errors.New("cannot read workbook")
	// ErrNoRowsImported means every data row was rejected, so the import as
	// a whole failed. Row errors travel in the ImportResult.
	ErrNoRowsImported = errors.New("no rows imported")
)

type ImportResult struct {
	Imported int      `json:"imported"`
	Assets   []Asset  `json:"assets"`
	Errors   []string `json:"errors,omitempty"`
}

type AssetService interface {
	ListAssets(ctx context.Context) ([]Asset, error)
	GetAssetByID(ctx context.Context, id int64) (Asset, error)
	CreateAsset(ctx context.Context, input AssetInput) (Asset, error)
	UpdateAsset(ctx context.Context, id int64, patch AssetPatch) (Asset, error)
	DeleteAsset(ctx context.Context, id int64) (bool, error)
	ImportAssets(ctx context.Context, r io.Reader) (ImportResult, error)
	ExportAssets(ctx context.Context) ([]byte, error)
}

type assetService struct {
	repo AssetRepository
}

func NewAssetService(repo AssetRepository) AssetService {
	return &assetService{repo: repo}
}

func (s *assetService) ListAssets(ctx context.Context) ([]Asset, error) {
	return s.repo.ListAssets(ctx)
}

func (s *assetService) GetAssetByID(ctx context.Context, id int64) (Asset, error) {
	return s.repo.GetAssetByID(ctx, id)
}

func (s *assetService) CreateAsset(ctx context.Context, input AssetInput) (Asset, error) {
	if errs := ValidateInput(input); len(errs) > 0 {
		return Asset{}, errs
	}

	if err := s.checkTagFree(ctx, input.Tag); err != nil {
		return Asset{}, err
	}

	return s.repo.CreateAsset(ctx, assetFromInput(input))
}

func (s *assetService) UpdateAsset(ctx context.Context, id int64, patch AssetPatch) (Asset, error) {
	if errs := ValidatePatch(patch); len(errs) > 0 {
		return Asset{}, errs
	}

	existing, err := s.repo.GetAssetByID(ctx, id)
	if err != nil {
		return Asset{}, err
	}

	merged := mergeAsset(existing, patch)

	if merged.Tag != existing.Tag {
		if err := s.checkTagFree(ctx, merged.Tag); err != nil {
			return Asset{}, err
		}
	}

	return s.repo.UpdateAsset(ctx, merged)
}

func (s *assetService) DeleteAsset(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteAsset(ctx, id)
}

// checkTagFree enforces tag uniqueness against persisted state. The UNIQUE
// index on assets.tag remains the backstop for races.
func (s *assetService) checkTagFree(ctx context.Context, tag string) error {
	_, err := s.repo.GetAssetByTag(ctx, tag)
	if err == nil {
		return ErrTagConflict
	}
	if !errors.Is(err, ErrAssetNotFound) {
		return err
	}
	return nil
}

// mergeAsset overlays onto base exactly the fields the patch carries;
// everything else keeps its prior value.
func mergeAsset(base Asset, patch AssetPatch) Asset {
	merged := base
	if patch.Name != nil {
		merged.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Type != nil {
		merged.Type = strings.TrimSpace(*patch.Type)
	}
	if patch.Tag != nil {
		merged.Tag = strings.TrimSpace(*patch.Tag)
	}
	if patch.SerialNumber != nil {
		merged.SerialNumber = strings.TrimSpace(*patch.SerialNumber)
	}
	if patch.Cost != nil {
		merged.Cost = normalizeCost(*patch.Cost)
	}
	if patch.AcquisitionDate != nil {
		merged.AcquisitionDate = strings.TrimSpace(*patch.AcquisitionDate)
	}
	return merged
}

func assetFromInput(in AssetInput) Asset {
	return Asset{
		Name:            strings.TrimSpace(in.Name),
		Type:            strings.TrimSpace(in.Type),
		Tag:             strings.TrimSpace(in.Tag),
		SerialNumber:    strings.TrimSpace(in.SerialNumber),
		Cost:            normalizeCost(in.Cost),
		AcquisitionDate: strings.TrimSpace(in.AcquisitionDate),
	}
}

// ImportAssets scans every data row of the workbook, accumulating a
// row-indexed error for each rejected row and never aborting early. Rows
// that survive validation and the tag checks are inserted as one batch.
// Partial success is an expected outcome, not a failure.
func (s *assetService) ImportAssets(ctx context.Context, r io.Reader) (ImportResult, error) {
	var res ImportResult
	res.Assets = make([]Asset, 0)

	rows, err := readWorkbook(r)
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrWorkbookUnreadable, err)
	}
	if len(rows) == 0 {
		return res, ErrNoRowsImported
	}

	seen := make(map[string]bool)
	accepted := make([]Asset, 0, len(rows))

	for _, row := range rows {
		if len(row.Missing) > 0 {
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: missing required fields: %s", row.Number, strings.Join(row.Missing, ", ")))
			continue
		}
		if errs := ValidateInput(row.Input); len(errs) > 0 {
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: %s", row.Number, errs.Error()))
			continue
		}

		tag := strings.TrimSpace(row.Input.Tag)
		if seen[tag] {
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: tag %q duplicated within the file", row.Number, tag))
			continue
		}

		// Uniqueness is checked against current persisted state, not just
		// within the batch.
		if _, err := s.repo.GetAssetByTag(ctx, tag); err == nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: tag %q already exists", row.Number, tag))
			continue
		} else if !errors.Is(err, ErrAssetNotFound) {
			return res, err
		}

		seen[tag] = true
		accepted = append(accepted, assetFromInput(row.Input))
	}

	if len(accepted) == 0 {
		return res, ErrNoRowsImported
	}

	created, err := s.repo.CreateAssets(ctx, accepted)
	res.Assets = created
	res.Imported = len(created)
	if err != nil {
		return res, err
	}
	return res, nil
}

func (s *assetService) ExportAssets(ctx context.Context) ([]byte, error) {
	list, err := s.repo.ListAssets(ctx)
	if err != nil {
		return nil, err
	}
	return buildWorkbook(list)
}
