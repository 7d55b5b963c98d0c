// Package repository provides hand-written testify doubles for the
// persistence interfaces.
package repository

import (
	"context"
	"testing"
	"time"

	"medvantage/internal/domain/entity"
	"medvantage/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository implements repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) Find(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*entity.User)

	return users, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	return m.Called(ctx, id, role).Error(0)
}

func (m *MockUserRepository) UpdateRoleByEmail(ctx context.Context, email string, role entity.Role) error {
	return m.Called(ctx, email, role).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) EstimatedCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

// MockSellerRequestRepository implements repository.SellerRequestRepository.
type MockSellerRequestRepository struct {
	mock.Mock
}

func NewMockSellerRequestRepository(t *testing.T) *MockSellerRequestRepository {
	m := &MockSellerRequestRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSellerRequestRepository) Find(ctx context.Context) ([]*entity.SellerRequest, error) {
	args := m.Called(ctx)
	requests, _ := args.Get(0).([]*entity.SellerRequest)

	return requests, args.Error(1)
}

func (m *MockSellerRequestRepository) FindByID(ctx context.Context, id string) (*entity.SellerRequest, error) {
	args := m.Called(ctx, id)
	request, _ := args.Get(0).(*entity.SellerRequest)

	return request, args.Error(1)
}

func (m *MockSellerRequestRepository) FindPendingByEmail(ctx context.Context, email string) (*entity.SellerRequest, error) {
	args := m.Called(ctx, email)
	request, _ := args.Get(0).(*entity.SellerRequest)

	return request, args.Error(1)
}

func (m *MockSellerRequestRepository) Create(ctx context.Context, request *entity.SellerRequest) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockSellerRequestRepository) UpdateStatus(ctx context.Context, id string, status entity.RequestStatus, processedAt time.Time) error {
	return m.Called(ctx, id, status, processedAt).Error(0)
}

func (m *MockSellerRequestRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSellerRequestRepository) EstimatedCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

// MockCategoryRepository implements repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func NewMockCategoryRepository(t *testing.T) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryRepository) Find(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]*entity.Category)

	return categories, args.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	args := m.Called(ctx, slug)
	category, _ := args.Get(0).(*entity.Category)

	return category, args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockMedicineRepository implements repository.MedicineRepository.
type MockMedicineRepository struct {
	mock.Mock
}

func NewMockMedicineRepository(t *testing.T) *MockMedicineRepository {
	m := &MockMedicineRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMedicineRepository) Find(ctx context.Context, categorySlug string) ([]*entity.Medicine, error) {
	args := m.Called(ctx, categorySlug)
	medicines, _ := args.Get(0).([]*entity.Medicine)

	return medicines, args.Error(1)
}

func (m *MockMedicineRepository) FindByID(ctx context.Context, id string) (*entity.Medicine, error) {
	args := m.Called(ctx, id)
	medicine, _ := args.Get(0).(*entity.Medicine)

	return medicine, args.Error(1)
}

func (m *MockMedicineRepository) FindBySeller(ctx context.Context, sellerEmail string) ([]*entity.Medicine, error) {
	args := m.Called(ctx, sellerEmail)
	medicines, _ := args.Get(0).([]*entity.Medicine)

	return medicines, args.Error(1)
}

func (m *MockMedicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	return m.Called(ctx, medicine).Error(0)
}

func (m *MockMedicineRepository) Update(ctx context.Context, medicine *entity.Medicine) error {
	return m.Called(ctx, medicine).Error(0)
}

func (m *MockMedicineRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMedicineRepository) EstimatedCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

// MockCartRepository implements repository.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func NewMockCartRepository(t *testing.T) *MockCartRepository {
	m := &MockCartRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCartRepository) FindByUser(ctx context.Context, userEmail string) ([]*entity.CartItem, error) {
	args := m.Called(ctx, userEmail)
	items, _ := args.Get(0).([]*entity.CartItem)

	return items, args.Error(1)
}

func (m *MockCartRepository) FindByID(ctx context.Context, id string) (*entity.CartItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*entity.CartItem)

	return item, args.Error(1)
}

func (m *MockCartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCartRepository) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCartRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	args := m.Called(ctx, ids)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCartRepository) DeleteByUser(ctx context.Context, userEmail string) (int64, error) {
	args := m.Called(ctx, userEmail)

	return args.Get(0).(int64), args.Error(1)
}

// MockPaymentRepository implements repository.PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func NewMockPaymentRepository(t *testing.T) *MockPaymentRepository {
	m := &MockPaymentRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPaymentRepository) Find(ctx context.Context) ([]*entity.Payment, error) {
	args := m.Called(ctx)
	payments, _ := args.Get(0).([]*entity.Payment)

	return payments, args.Error(1)
}

func (m *MockPaymentRepository) FindByUser(ctx context.Context, userEmail string) ([]*entity.Payment, error) {
	args := m.Called(ctx, userEmail)
	payments, _ := args.Get(0).([]*entity.Payment)

	return payments, args.Error(1)
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) EstimatedCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)

	return args.Get(0).(float64), args.Error(1)
}

// MockAdvertisementRepository implements repository.AdvertisementRepository.
type MockAdvertisementRepository struct {
	mock.Mock
}

func NewMockAdvertisementRepository(t *testing.T) *MockAdvertisementRepository {
	m := &MockAdvertisementRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAdvertisementRepository) Find(ctx context.Context, activeOnly bool) ([]*entity.Advertisement, error) {
	args := m.Called(ctx, activeOnly)
	ads, _ := args.Get(0).([]*entity.Advertisement)

	return ads, args.Error(1)
}

func (m *MockAdvertisementRepository) FindBySeller(ctx context.Context, sellerEmail string) ([]*entity.Advertisement, error) {
	args := m.Called(ctx, sellerEmail)
	ads, _ := args.Get(0).([]*entity.Advertisement)

	return ads, args.Error(1)
}

func (m *MockAdvertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) error {
	return m.Called(ctx, ad).Error(0)
}

func (m *MockAdvertisementRepository) SetActive(ctx context.Context, id string, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *MockAdvertisementRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockTransactionManager implements repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return m.Called(ctx, fn).Error(0)
}

// MockRepositoryFactory implements repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.UserRepository)

	return repo
}

func (m *MockRepositoryFactory) SellerRequestRepo() repository.SellerRequestRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.SellerRequestRepository)

	return repo
}

func (m *MockRepositoryFactory) CartRepo() repository.CartRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.CartRepository)

	return repo
}

func (m *MockRepositoryFactory) PaymentRepo() repository.PaymentRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.PaymentRepository)

	return repo
}
