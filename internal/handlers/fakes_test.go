package handlers

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/developia-II/jewellery-storefront/internal/adapters/repository"
	"github.com/developia-II/jewellery-storefront/internal/models"
	"github.com/developia-II/jewellery-storefront/internal/services/media"
	"github.com/developia-II/jewellery-storefront/internal/services/vision"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeProducts struct {
	items []models.Product
}

func (f *fakeProducts) List(ctx context.Context, q models.ProductQuery) ([]models.Product, int64, error) {
	out := []models.Product{}
	for _, p := range f.items {
		if q.CategoryID != nil && p.CategoryID != *q.CategoryID {
			continue
		}
		if q.Gender != "" && string(p.Gender) != q.Gender {
			continue
		}
		if (q.MinPrice != nil || q.MaxPrice != nil) && p.Price == nil {
			continue
		}
		if q.MinPrice != nil && *p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && *p.Price > *q.MaxPrice {
			continue
		}
		if q.Featured != nil && p.Featured != *q.Featured {
			continue
		}
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProducts) Create(ctx context.Context, p models.Product) (models.Product, error) {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()
	f.items = append(f.items, p)
	return p, nil
}

func (f *fakeProducts) Update(ctx context.Context, id primitive.ObjectID, in models.UpdateProductInput) (models.Product, error) {
	for i, p := range f.items {
		if p.ID != id {
			continue
		}
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Price != nil {
			p.Price = in.Price
		}
		f.items[i] = p
		return p, nil
	}
	return models.Product{}, repository.ErrNotFound
}

func (f *fakeProducts) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, p := range f.items {
		if p.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeProducts) DeleteByAsset(ctx context.Context, publicID, url string) (int64, error) {
	kept := f.items[:0]
	var n int64
	for _, p := range f.items {
		if (publicID != "" && p.CloudinaryPublicID == publicID) || (url != "" && p.ImageURL == url) {
			n++
			continue
		}
		kept = append(kept, p)
	}
	f.items = kept
	return n, nil
}

type fakeCategories struct {
	items []models.Category
}

func (f *fakeCategories) List(ctx context.Context) ([]models.Category, error) {
	return append([]models.Category{}, f.items...), nil
}

func (f *fakeCategories) Create(ctx context.Context, c models.Category) (models.Category, error) {
	for _, existing := range f.items {
		if existing.Slug == c.Slug {
			return models.Category{}, repository.ErrDuplicate
		}
	}
	c.ID = primitive.NewObjectID()
	f.items = append(f.items, c)
	return c, nil
}

func (f *fakeCategories) Update(ctx context.Context, id primitive.ObjectID, in models.UpdateCategoryInput) (models.Category, error) {
	for i, c := range f.items {
		if c.ID == id {
			if in.Name != nil {
				c.Name = *in.Name
			}
			f.items[i] = c
			return c, nil
		}
	}
	return models.Category{}, repository.ErrNotFound
}

func (f *fakeCategories) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

type fakeCollections struct{ items []models.Collection }

func (f *fakeCollections) List(ctx context.Context) ([]models.Collection, error) { return f.items, nil }

func (f *fakeCollections) Create(ctx context.Context, c models.Collection) (models.Collection, error) {
	c.ID = primitive.NewObjectID()
	f.items = append(f.items, c)
	return c, nil
}

func (f *fakeCollections) Update(ctx context.Context, id primitive.ObjectID, in models.UpdateCollectionInput) (models.Collection, error) {
	return models.Collection{}, repository.ErrNotFound
}

func (f *fakeCollections) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }

type fakeTestimonials struct {
	items        []models.Testimonial
	featuredOnly bool
}

func (f *fakeTestimonials) List(ctx context.Context, featuredOnly bool) ([]models.Testimonial, error) {
	f.featuredOnly = featuredOnly
	return f.items, nil
}

func (f *fakeTestimonials) Create(ctx context.Context, t models.Testimonial) (models.Testimonial, error) {
	t.ID = primitive.NewObjectID()
	f.items = append(f.items, t)
	return t, nil
}

func (f *fakeTestimonials) Update(ctx context.Context, id primitive.ObjectID, in models.UpdateTestimonialInput) (models.Testimonial, error) {
	return models.Testimonial{}, repository.ErrNotFound
}

func (f *fakeTestimonials) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }

type fakeCatalogs struct{ items []models.Catalog }

func (f *fakeCatalogs) List(ctx context.Context) ([]models.Catalog, error) { return f.items, nil }

func (f *fakeCatalogs) Create(ctx context.Context, c models.Catalog) (models.Catalog, error) {
	c.ID = primitive.NewObjectID()
	f.items = append(f.items, c)
	return c, nil
}

func (f *fakeCatalogs) Update(ctx context.Context, id primitive.ObjectID, in models.UpdateCatalogInput) (models.Catalog, error) {
	for i, c := range f.items {
		if c.ID == id {
			if in.Title != nil {
				c.Title = *in.Title
			}
			f.items[i] = c
			return c, nil
		}
	}
	return models.Catalog{}, repository.ErrNotFound
}

func (f *fakeCatalogs) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }

type fakeContacts struct {
	items []models.ContactMessage
}

func (f *fakeContacts) List(ctx context.Context, status models.ContactStatus) ([]models.ContactMessage, error) {
	out := []models.ContactMessage{}
	for _, m := range f.items {
		if status == "" || m.Status == status {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeContacts) Create(ctx context.Context, m models.ContactMessage) (models.ContactMessage, error) {
	m.ID = primitive.NewObjectID()
	m.Status = models.ContactNew
	f.items = append(f.items, m)
	return m, nil
}

func (f *fakeContacts) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ContactStatus) (models.ContactMessage, models.ContactStatus, error) {
	for i, m := range f.items {
		if m.ID == id {
			previous := m.Status
			m.Status = status
			f.items[i] = m
			return m, previous, nil
		}
	}
	return models.ContactMessage{}, "", repository.ErrNotFound
}

type fakeHomePage struct {
	page *models.HomePage
}

func (f *fakeHomePage) Get(ctx context.Context) (*models.HomePage, error) { return f.page, nil }

func (f *fakeHomePage) Upsert(ctx context.Context, in models.UpdateHomePageInput) (models.HomePage, error) {
	if f.page == nil {
		f.page = &models.HomePage{ID: primitive.NewObjectID(), Singleton: models.HomePageKey}
	}
	if in.HeroTitle != nil {
		f.page.HeroTitle = *in.HeroTitle
	}
	if in.AboutText != nil {
		f.page.AboutText = *in.AboutText
	}
	return *f.page, nil
}

type fakeUsers struct {
	mu      sync.Mutex
	byEmail map[string]models.User
	creates int
	// raceWith is stored on the first Create to simulate a concurrent
	// login that inserted the same email first.
	raceWith *models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]models.User{}}
}

func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byEmail[email]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) Create(ctx context.Context, u models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.raceWith != nil {
		f.byEmail[f.raceWith.Email] = *f.raceWith
		f.raceWith = nil
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return models.User{}, repository.ErrDuplicate
	}
	f.creates++
	u.ID = primitive.NewObjectID()
	f.byEmail[u.Email] = u
	return u, nil
}

type fakeAssets struct {
	assets    []media.Asset
	destroyed []string
	uploaded  int
}

func (f *fakeAssets) SignUpload(folder string, now time.Time) (media.UploadSignature, error) {
	return media.UploadSignature{Signature: "sig", Timestamp: now.Unix(), CloudName: "demo", APIKey: "key", Folder: folder}, nil
}

func (f *fakeAssets) List(ctx context.Context, prefix string, max int) ([]media.Asset, error) {
	return f.assets, nil
}

func (f *fakeAssets) Destroy(ctx context.Context, publicID string) error {
	if publicID == "missing" {
		return errors.New("not found")
	}
	f.destroyed = append(f.destroyed, publicID)
	return nil
}

func (f *fakeAssets) Upload(ctx context.Context, file io.Reader, folder, publicID string) (media.UploadResult, error) {
	if _, err := io.ReadAll(file); err != nil {
		return media.UploadResult{}, err
	}
	f.uploaded++
	return media.UploadResult{URL: "https://cdn/" + folder + "/" + publicID, PublicID: folder + "/" + publicID}, nil
}

type fakeAnalyzer struct{}

func (fakeAnalyzer) Analyze(ctx context.Context, imageURL string) (vision.Analysis, error) {
	if imageURL == "https://cdn/blurry.jpg" {
		return vision.Analysis{}, vision.ErrNoJSON
	}
	return vision.Analysis{Name: "Temple Necklace", Category: "necklace", Gender: "Female", EstimatedPrice: 2400}, nil
}

type fakeNotifier struct {
	sent chan models.ContactMessage
}

func (f *fakeNotifier) ContactReceived(ctx context.Context, msg models.ContactMessage) error {
	f.sent <- msg
	return nil
}
