package product

import (
	"context"
	"testing"
	"time"

	"Pantry-Share-Backend/domain"
	"Pantry-Share-Backend/entities"
	"Pantry-Share-Backend/pkg/card"
	"Pantry-Share-Backend/pkg/container"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type productRepositoryFake struct {
	products map[string]*entities.Product
}

func newProductRepositoryFake() *productRepositoryFake {
	return &productRepositoryFake{products: make(map[string]*entities.Product)}
}

func (f *productRepositoryFake) AddProduct(_ context.Context, product *entities.Product) error {
	f.products[product.ID.String()] = product
	return nil
}

func (f *productRepositoryFake) UpdateProduct(_ context.Context, product *entities.Product) error {
	f.products[product.ID.String()] = product
	return nil
}

func (f *productRepositoryFake) DeleteProduct(_ context.Context, id string) error {
	delete(f.products, id)
	return nil
}

func (f *productRepositoryFake) FindAggregateByBarcode(_ context.Context, entryUUIDs []string, barcode string) (*entities.Product, error) {
	for _, id := range entryUUIDs {
		if product, ok := f.products[id]; ok && product.Barcode == barcode {
			return product, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *productRepositoryFake) GetFullProductByEntryUUID(_ context.Context, id string) (*entities.Product, error) {
	if product, ok := f.products[id]; ok {
		return product, nil
	}
	for _, product := range f.products {
		for _, associated := range product.Associated {
			if associated.UUID.String() == id {
				return product, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *productRepositoryFake) GetAllProducts(_ context.Context) ([]entities.Product, error) {
	products := make([]entities.Product, 0, len(f.products))
	for _, product := range f.products {
		products = append(products, *product)
	}
	return products, nil
}

type cardRepositoryFake struct {
	cards map[string]entities.ProductCard
}

func (f *cardRepositoryFake) FindCard(_ context.Context, barcode string) (*entities.ProductCard, error) {
	c, ok := f.cards[barcode]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (f *cardRepositoryFake) AddCard(_ context.Context, c *entities.ProductCard) error {
	f.cards[c.Barcode] = *c
	return nil
}

func (f *cardRepositoryFake) UpdateCard(_ context.Context, c *entities.ProductCard) error {
	f.cards[c.Barcode] = *c
	return nil
}

type containerRepositoryFake struct {
	containers map[string]*entities.Container
}

func newContainerRepositoryFake() *containerRepositoryFake {
	return &containerRepositoryFake{containers: make(map[string]*entities.Container)}
}

func (f *containerRepositoryFake) CreateContainer(_ context.Context, ownerUUID uuid.UUID) (*entities.Container, error) {
	c := &entities.Container{
		ID:             uuid.New(),
		OwnerUUID:      ownerUUID,
		OwnerProducts:  datatypes.JSONSlice[string]{},
		SharedProducts: datatypes.JSONSlice[string]{},
		UsersUUIDs:     datatypes.JSONSlice[string]{},
	}
	f.containers[c.ID.String()] = c
	return c, nil
}

func (f *containerRepositoryFake) FindContainerByOwner(_ context.Context, ownerUUID string) (*entities.Container, error) {
	for _, c := range f.containers {
		if c.OwnerUUID.String() == ownerUUID {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *containerRepositoryFake) GetContainer(_ context.Context, id string) (*entities.Container, error) {
	c, ok := f.containers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *containerRepositoryFake) GetContainerWithProduct(_ context.Context, productUUID string) (*entities.Container, error) {
	for _, c := range f.containers {
		if c.HasProduct(productUUID) {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *containerRepositoryFake) UpdateContainer(_ context.Context, c *entities.Container) error {
	f.containers[c.ID.String()] = c
	return nil
}

func (f *containerRepositoryFake) DeleteContainer(_ context.Context, id string) error {
	delete(f.containers, id)
	return nil
}

type userRepositoryFake struct {
	users map[string]entities.User
}

func (f *userRepositoryFake) CreateUser(_ context.Context, u *entities.User) error {
	f.users[u.ID.String()] = *u
	return nil
}

func (f *userRepositoryFake) GetUserByUUID(_ context.Context, id string) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *userRepositoryFake) GetUsersByUUIDs(_ context.Context, ids []string) ([]entities.User, error) {
	users := make([]entities.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (f *userRepositoryFake) CountByEmailOrLogin(_ context.Context, email, login string) (int64, error) {
	var count int64
	for _, u := range f.users {
		if u.Email == email || u.Login == login {
			count++
		}
	}
	return count, nil
}

type fixture struct {
	products   *productRepositoryFake
	containers *containerRepositoryFake
	users      *userRepositoryFake
	service    ProductService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	products := newProductRepositoryFake()
	containers := newContainerRepositoryFake()
	users := &userRepositoryFake{users: make(map[string]entities.User)}
	cardService := card.NewCardService(&cardRepositoryFake{cards: make(map[string]entities.ProductCard)})
	containerService := container.NewContainerService(containers, users)
	return &fixture{
		products:   products,
		containers: containers,
		users:      users,
		service:    NewProductService(products, cardService, containers, containerService),
	}
}

func (fx *fixture) registerUser(t *testing.T) string {
	t.Helper()
	id := uuid.New()
	fx.users.users[id.String()] = entities.User{
		ID:    id,
		Email: id.String() + "@example.com",
		Login: id.String()[:8],
	}
	return id.String()
}

func (fx *fixture) containerOf(t *testing.T, ownerUUID string) *entities.Container {
	t.Helper()
	c, err := fx.containers.FindContainerByOwner(context.Background(), ownerUUID)
	require.NoError(t, err)
	return c
}

func wireProduct(barcode string, quantity float64) domain.Product {
	return domain.Product{
		Barcode:  barcode,
		Name:     "Oat Milk",
		Brand:    "Oatly",
		Price:    entities.Price{Value: 2.49, Currency: "EUR"},
		Quantity: quantity,
	}
}

func TestAddProductSameBarcodeGrowsAggregate(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	userUUID := fx.registerUser(t)

	first, err := fx.service.AddProduct(ctx, wireProduct("5901234123457", 1), userUUID)
	require.NoError(t, err)
	second, err := fx.service.AddProduct(ctx, wireProduct("5901234123457", 2), userUUID)
	require.NoError(t, err)

	assert.NotEqual(t, first.UUID, second.UUID)
	require.Len(t, fx.products.products, 1)

	aggregate := fx.products.products[first.UUID]
	require.NotNil(t, aggregate)
	require.Len(t, aggregate.Associated, 1)
	assert.Equal(t, second.UUID, aggregate.Associated[0].UUID.String())
	assert.Equal(t, 2.0, aggregate.Associated[0].Quantity)

	holder := fx.containerOf(t, userUUID)
	assert.ElementsMatch(t, []string{first.UUID, second.UUID}, []string(holder.OwnerProducts))
}

func TestAddProductDistinctBarcodesStaySeparate(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	userUUID := fx.registerUser(t)

	_, err := fx.service.AddProduct(ctx, wireProduct("5901234123457", 1), userUUID)
	require.NoError(t, err)
	_, err = fx.service.AddProduct(ctx, wireProduct("4006381333931", 1), userUUID)
	require.NoError(t, err)

	assert.Len(t, fx.products.products, 2)
}

func TestAddSharedProductRegistersInSharedList(t *testing.T) {
	fx := newFixture(t)
	userUUID := fx.registerUser(t)

	req := wireProduct("5901234123457", 1)
	req.Metadata.Shared = true
	res, err := fx.service.AddProduct(context.Background(), req, userUUID)
	require.NoError(t, err)

	holder := fx.containerOf(t, userUUID)
	assert.Contains(t, []string(holder.SharedProducts), res.UUID)
	assert.Empty(t, holder.OwnerProducts)
}

func TestDeleteRootPromotesLastAssociated(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	userUUID := fx.registerUser(t)

	root, err := fx.service.AddProduct(ctx, wireProduct("5901234123457", 1), userUUID)
	require.NoError(t, err)
	associated, err := fx.service.AddProduct(ctx, wireProduct("5901234123457", 2), userUUID)
	require.NoError(t, err)

	require.NoError(t, fx.service.DeleteProduct(ctx, root.UUID, userUUID))

	require.Len(t, fx.products.products, 1)
	promoted := fx.products.products[associated.UUID]
	require.NotNil(t, promoted)
	assert.Equal(t, 2.0, promoted.Quantity)
	assert.Empty(t, promoted.Associated)

	holder := fx.containerOf(t, userUUID)
	assert.NotContains(t, []string(holder.OwnerProducts), root.UUID)
	assert.Contains(t, []string(holder.OwnerProducts), associated.UUID)
}

func TestDeleteLastEntryRemovesAggregate(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	userUUID := fx.registerUser(t)

	res, err := fx.service.AddProduct(ctx, wireProduct("5901234123457", 1), userUUID)
	require.NoError(t, err)

	require.NoError(t, fx.service.DeleteProduct(ctx, res.UUID, userUUID))

	assert.Empty(t, fx.products.products)
	assert.Empty(t, fx.containerOf(t, userUUID).OwnerProducts)
}

func TestDeleteAssociatedEntryKeepsRoot(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	userUUID := fx.registerUser(t)

	root, err := fx.service.AddProduct(ctx, wireProduct("5901234123457", 1), userUUID)
	require.NoError(t, err)
	associated, err := fx.service.AddProduct(ctx, wireProduct("5901234123457", 2), userUUID)
	require.NoError(t, err)

	require.NoError(t, fx.service.DeleteProduct(ctx, associated.UUID, userUUID))

	aggregate := fx.products.products[root.UUID]
	require.NotNil(t, aggregate)
	assert.Empty(t, aggregate.Associated)
	assert.NotContains(t, []string(fx.containerOf(t, userUUID).OwnerProducts), associated.UUID)
}

func TestDeleteProductInvisibleToUser(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	owner := fx.registerUser(t)
	stranger := fx.registerUser(t)

	res, err := fx.service.AddProduct(ctx, wireProduct("5901234123457", 1), owner)
	require.NoError(t, err)
	_, err = fx.service.AddProduct(ctx, wireProduct("4006381333931", 1), stranger)
	require.NoError(t, err)

	err = fx.service.DeleteProduct(ctx, res.UUID, stranger)

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUpdateRejectsBarcodeChange(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	userUUID := fx.registerUser(t)

	res, err := fx.service.AddProduct(ctx, wireProduct("5901234123457", 1), userUUID)
	require.NoError(t, err)

	update := wireProduct("4006381333931", 1)
	update.UUID = res.UUID
	_, err = fx.service.UpdateProduct(ctx, update)

	assert.ErrorIs(t, err, domain.ErrBarcodeImmutable)
	assert.Equal(t, "5901234123457", fx.products.products[res.UUID].Barcode)
}

func TestUpdateRejectsQuantityOverTotal(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	userUUID := fx.registerUser(t)

	req := wireProduct("5901234123457", 1)
	req.TotalQuantity = 10
	res, err := fx.service.AddProduct(ctx, req, userUUID)
	require.NoError(t, err)

	update := wireProduct("5901234123457", 12)
	update.UUID = res.UUID
	_, err = fx.service.UpdateProduct(ctx, update)

	assert.ErrorIs(t, err, domain.ErrQuantityExceedsTotal)
}

func TestUpdateRequiresUUID(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.service.UpdateProduct(context.Background(), wireProduct("5901234123457", 1))

	assert.ErrorIs(t, err, domain.ErrMissingProductUUID)
}

func TestUpdateRejectsCreatedDateChange(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	userUUID := fx.registerUser(t)

	res, err := fx.service.AddProduct(ctx, wireProduct("5901234123457", 1), userUUID)
	require.NoError(t, err)

	update := wireProduct("5901234123457", 1)
	update.UUID = res.UUID
	update.Metadata.CreatedDate = "1999-01-01"
	_, err = fx.service.UpdateProduct(ctx, update)

	assert.ErrorIs(t, err, domain.ErrCreatedDateImmutable)
}

func TestUpdateSharingMovesEntryToSharedList(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	userUUID := fx.registerUser(t)

	res, err := fx.service.AddProduct(ctx, wireProduct("5901234123457", 1), userUUID)
	require.NoError(t, err)

	update := wireProduct("5901234123457", 1)
	update.UUID = res.UUID
	update.Metadata.Shared = true
	got, err := fx.service.UpdateProduct(ctx, update)
	require.NoError(t, err)
	assert.True(t, got.Metadata.Shared)

	holder := fx.containerOf(t, userUUID)
	assert.Contains(t, []string(holder.SharedProducts), res.UUID)
	assert.NotContains(t, []string(holder.OwnerProducts), res.UUID)
}

func TestUpdateIgnoresSharedDowngrade(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	userUUID := fx.registerUser(t)

	req := wireProduct("5901234123457", 1)
	req.Metadata.Shared = true
	res, err := fx.service.AddProduct(ctx, req, userUUID)
	require.NoError(t, err)

	update := wireProduct("5901234123457", 1)
	update.UUID = res.UUID
	update.Metadata.Shared = false
	got, err := fx.service.UpdateProduct(ctx, update)
	require.NoError(t, err)
	assert.True(t, got.Metadata.Shared)

	holder := fx.containerOf(t, userUUID)
	assert.Contains(t, []string(holder.SharedProducts), res.UUID)

	require.NoError(t, fx.service.DeleteProduct(ctx, res.UUID, userUUID))
	holder = fx.containerOf(t, userUUID)
	assert.NotContains(t, []string(holder.SharedProducts), res.UUID)
	assert.NotContains(t, []string(holder.OwnerProducts), res.UUID)
}

func TestGetAllProductsIncludesSharedFromSharers(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	owner := fx.registerUser(t)
	viewer := fx.registerUser(t)

	shared := wireProduct("5901234123457", 1)
	shared.Metadata.Shared = true
	res, err := fx.service.AddProduct(ctx, shared, owner)
	require.NoError(t, err)
	own, err := fx.service.AddProduct(ctx, wireProduct("4006381333931", 1), viewer)
	require.NoError(t, err)

	viewerContainer := fx.containerOf(t, viewer)
	viewerContainer.UsersUUIDs = append(viewerContainer.UsersUUIDs, owner)

	products, err := fx.service.GetAllProducts(ctx, viewer, nil)

	require.NoError(t, err)
	uuids := make([]string, 0, len(products))
	for _, p := range products {
		uuids = append(uuids, p.UUID)
	}
	assert.ElementsMatch(t, []string{own.UUID, res.UUID}, uuids)
}

func TestSynchronizeAppliesBatch(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	userUUID := fx.registerUser(t)

	existing, err := fx.service.AddProduct(ctx, wireProduct("5901234123457", 1), userUUID)
	require.NoError(t, err)

	toDelete := wireProduct("5901234123457", 1)
	toDelete.UUID = existing.UUID
	toDelete.Metadata.ToBeDeleted = true

	res, err := fx.service.SynchronizeProducts(ctx, userUUID, []domain.Product{
		wireProduct("4006381333931", 1),
		toDelete,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SyncStatusOK, res.Status)
	require.Len(t, res.SynchronizedProducts, 1)
	assert.Equal(t, "4006381333931", res.SynchronizedProducts[0].Barcode)
}

func TestSynchronizeReportsPartialOnFailure(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	userUUID := fx.registerUser(t)

	existing, err := fx.service.AddProduct(ctx, wireProduct("5901234123457", 1), userUUID)
	require.NoError(t, err)

	// Barcode change is rejected on update, so this entry fails while the
	// create before it still lands.
	broken := wireProduct("4006381333931", 1)
	broken.UUID = existing.UUID

	res, err := fx.service.SynchronizeProducts(ctx, userUUID, []domain.Product{
		wireProduct("8712100849718", 1),
		broken,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SyncStatusPartial, res.Status)
	assert.Len(t, res.SynchronizedProducts, 2)
}

func TestGetOutdatedProductsWithinWindow(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	userUUID := fx.registerUser(t)

	soon := time.Now().UTC().Add(24 * time.Hour).Format(domain.DateLayout)
	later := time.Now().UTC().Add(30 * 24 * time.Hour).Format(domain.DateLayout)

	expiring := wireProduct("5901234123457", 1)
	expiring.Metadata.ExpiryDate = &soon
	res, err := fx.service.AddProduct(ctx, expiring, userUUID)
	require.NoError(t, err)

	fresh := wireProduct("4006381333931", 1)
	fresh.Metadata.ExpiryDate = &later
	_, err = fx.service.AddProduct(ctx, fresh, userUUID)
	require.NoError(t, err)

	outdated, err := fx.service.GetOutdatedProducts(ctx)

	require.NoError(t, err)
	require.Len(t, outdated, 1)
	assert.Equal(t, res.UUID, outdated[0].OutdatedProduct.UUID)
	require.Len(t, outdated[0].Users, 1)
	assert.Equal(t, userUUID, outdated[0].Users[0].UUID)
}
