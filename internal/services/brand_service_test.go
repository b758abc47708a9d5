package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandCreateAndGet(t *testing.T) {
	s := NewBrandService(newTestDB(t))

	created, err := s.Create(CreateBrandInput{
		Title:           "  Maison Margiela  ",
		Description:     strPtr("Replica line"),
		ProfileImageURL: strPtr("https://cdn.example.com/mm.png"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Maison Margiela", created.Title)
	assert.False(t, created.CreatedDate.IsZero())

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maison Margiela", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Replica line", *got.Description)
	require.NotNil(t, got.ProfileImageURL)
	assert.Equal(t, "https://cdn.example.com/mm.png", *got.ProfileImageURL)
}

func TestBrandCreate_BlankOptionalsStoredAsNull(t *testing.T) {
	s := NewBrandService(newTestDB(t))

	created, err := s.Create(CreateBrandInput{
		Title:       "Diptyque",
		Description: strPtr("   "),
	})
	require.NoError(t, err)

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.ProfileImageURL)
}

func TestBrandCreate_EmptyTitleRejected(t *testing.T) {
	s := NewBrandService(newTestDB(t))

	_, err := s.Create(CreateBrandInput{Title: "   "})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	count, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestBrandGet_NotFound(t *testing.T) {
	s := NewBrandService(newTestDB(t))

	_, err := s.Get(42)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "brand not found", err.Error())
}

func TestBrandSparseUpdate(t *testing.T) {
	s := NewBrandService(newTestDB(t))

	created, err := s.Create(CreateBrandInput{
		Title:           "Byredo",
		Description:     strPtr("Stockholm"),
		ProfileImageURL: strPtr("https://cdn.example.com/byredo.png"),
	})
	require.NoError(t, err)

	updated, err := s.Update(created.ID, UpdateBrandInput{
		Description: strPtr("Stockholm, founded 2006"),
	})
	require.NoError(t, err)

	// Only the patched field changes.
	assert.Equal(t, "Byredo", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Stockholm, founded 2006", *updated.Description)
	require.NotNil(t, updated.ProfileImageURL)
	assert.Equal(t, "https://cdn.example.com/byredo.png", *updated.ProfileImageURL)
}

func TestBrandUpdate_BlankClearsField(t *testing.T) {
	s := NewBrandService(newTestDB(t))

	created, err := s.Create(CreateBrandInput{
		Title:       "Le Labo",
		Description: strPtr("Santal 33"),
	})
	require.NoError(t, err)

	updated, err := s.Update(created.ID, UpdateBrandInput{Description: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
}

func TestBrandUpdate_EmptyTitleIgnored(t *testing.T) {
	s := NewBrandService(newTestDB(t))

	created, err := s.Create(CreateBrandInput{Title: "Aesop"})
	require.NoError(t, err)

	updated, err := s.Update(created.ID, UpdateBrandInput{
		Title:       strPtr("  "),
		Description: strPtr("skincare and fragrance"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Aesop", updated.Title)
}

func TestBrandUpdate_NoFields(t *testing.T) {
	s := NewBrandService(newTestDB(t))

	created, err := s.Create(CreateBrandInput{Title: "Creed"})
	require.NoError(t, err)

	_, err = s.Update(created.ID, UpdateBrandInput{})
	require.ErrorIs(t, err, ErrNoFieldsToUpdate)

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Creed", got.Title)
}

func TestBrandUpdate_NotFound(t *testing.T) {
	s := NewBrandService(newTestDB(t))

	_, err := s.Update(99, UpdateBrandInput{Title: strPtr("Ghost")})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestBrandDelete(t *testing.T) {
	s := NewBrandService(newTestDB(t))

	created, err := s.Create(CreateBrandInput{Title: "Penhaligon's"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(created.ID))

	_, err = s.Get(created.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestBrandDelete_NotFound(t *testing.T) {
	s := NewBrandService(newTestDB(t))

	err := s.Delete(7)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestBrandDelete_RejectedWhileInUse(t *testing.T) {
	db := newTestDB(t)
	brands := NewBrandService(db)
	products := NewProductService(db)

	brand, err := brands.Create(CreateBrandInput{Title: "Amouage"})
	require.NoError(t, err)

	_, err = products.Create(CreateProductInput{
		Title:   "Interlude Man",
		Price:   350000,
		BrandID: brand.ID,
	})
	require.NoError(t, err)

	err = brands.Delete(brand.ID)
	require.ErrorIs(t, err, ErrBrandInUse)

	// The brand row must survive the rejected delete.
	_, err = brands.Get(brand.ID)
	require.NoError(t, err)
}

func TestBrandCount(t *testing.T) {
	s := NewBrandService(newTestDB(t))

	for _, title := range []string{"Gucci", "Chanel", "Dior"} {
		_, err := s.Create(CreateBrandInput{Title: title})
		require.NoError(t, err)
	}

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
