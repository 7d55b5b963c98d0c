package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "medvantage/internal/delivery/context"
	"medvantage/internal/domain/entity"
	domainerrors "medvantage/internal/domain/errors"
	"medvantage/internal/domain/repository"
	"medvantage/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	categoryRepo repository.CategoryRepository
	medicineRepo repository.MedicineRepository
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	MedicineRepo repository.MedicineRepository
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo: params.CategoryRepo,
		medicineRepo: params.MedicineRepo,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.Find(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) GetCategory(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("no category for slug")
		}

		return nil, errors.Wrap(err, "failed to load category")
	}

	return category, nil
}

func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:        input.Name,
		Slug:        input.Slug,
		ImageURL:    input.ImageURL,
		Description: input.Description,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.String("slug", input.Slug))

	return category, nil
}

func (srv *catalogService) UpdateCategory(ctx context.Context, id string, input *usecase.CategoryInput) error {
	category := &entity.Category{
		ID:          id,
		Name:        input.Name,
		Slug:        input.Slug,
		ImageURL:    input.ImageURL,
		Description: input.Description,
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("no category for id")
		}

		return errors.Wrap(err, "failed to update category")
	}

	return nil
}

func (srv *catalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("no category for id")
		}

		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}

func (srv *catalogService) ListMedicines(ctx context.Context, categorySlug string) ([]*entity.Medicine, error) {
	medicines, err := srv.medicineRepo.Find(ctx, categorySlug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list medicines")
	}

	return medicines, nil
}

func (srv *catalogService) GetMedicine(ctx context.Context, id string) (*entity.Medicine, error) {
	medicine, err := srv.medicineRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, domainerrors.ErrMedicineNotFound.WrapMessage("no medicine for id")
		}

		return nil, errors.Wrap(err, "failed to load medicine")
	}

	return medicine, nil
}

func (srv *catalogService) ListMedicinesBySeller(ctx context.Context, sellerEmail string) ([]*entity.Medicine, error) {
	medicines, err := srv.medicineRepo.FindBySeller(ctx, sellerEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller medicines")
	}

	return medicines, nil
}

func (srv *catalogService) CreateMedicine(ctx context.Context, sellerEmail string, input *usecase.MedicineInput) (*entity.Medicine, error) {
	medicine := &entity.Medicine{
		Name:            input.Name,
		GenericName:     input.GenericName,
		ImageURL:        input.ImageURL,
		Description:     input.Description,
		CategorySlug:    input.CategorySlug,
		Company:         input.Company,
		MassUnit:        input.MassUnit,
		PricePerUnit:    input.PricePerUnit,
		DiscountPercent: input.DiscountPercent,
		SellerEmail:     sellerEmail,
		CreatedAt:       time.Now(),
	}

	if err := srv.medicineRepo.Create(ctx, medicine); err != nil {
		return nil, errors.Wrap(err, "failed to create medicine")
	}

	srv.log(ctx).Info("Medicine listed",
		slog.String("name", input.Name),
		slog.String("seller", sellerEmail),
	)

	return medicine, nil
}

// UpdateMedicine replaces the listing after checking the caller owns it.
func (srv *catalogService) UpdateMedicine(ctx context.Context, id, sellerEmail string, input *usecase.MedicineInput) error {
	if err := srv.checkOwnership(ctx, id, sellerEmail); err != nil {
		return err
	}

	medicine := &entity.Medicine{
		ID:              id,
		Name:            input.Name,
		GenericName:     input.GenericName,
		ImageURL:        input.ImageURL,
		Description:     input.Description,
		CategorySlug:    input.CategorySlug,
		Company:         input.Company,
		MassUnit:        input.MassUnit,
		PricePerUnit:    input.PricePerUnit,
		DiscountPercent: input.DiscountPercent,
		SellerEmail:     sellerEmail,
	}

	if err := srv.medicineRepo.Update(ctx, medicine); err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return domainerrors.ErrMedicineNotFound.WrapMessage("no medicine for id")
		}

		return errors.Wrap(err, "failed to update medicine")
	}

	return nil
}

func (srv *catalogService) DeleteMedicine(ctx context.Context, id, sellerEmail string) error {
	if err := srv.checkOwnership(ctx, id, sellerEmail); err != nil {
		return err
	}

	if err := srv.medicineRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return domainerrors.ErrMedicineNotFound.WrapMessage("no medicine for id")
		}

		return errors.Wrap(err, "failed to delete medicine")
	}

	return nil
}

func (srv *catalogService) checkOwnership(ctx context.Context, id, sellerEmail string) error {
	medicine, err := srv.medicineRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return domainerrors.ErrMedicineNotFound.WrapMessage("no medicine for id")
		}

		return errors.Wrap(err, "failed to load medicine for ownership check")
	}

	if medicine.SellerEmail != sellerEmail {
		return domainerrors.ErrForbidden.WrapMessage("listing belongs to another seller")
	}

	return nil
}
