package document

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	documentRepo "legalassist/database/repository/document"
	userRepo "legalassist/database/repository/user"
	"legalassist/models"
	"legalassist/services/storage"
	"legalassist/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	uploaded map[string]string
	deleted  []string
	err      error
}

func (f *fakeStorage) Upload(_ context.Context, file io.Reader, folder, filename string) (*storage.StoredObject, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	id := "raw/" + folder + "/" + filename
	if f.uploaded == nil {
		f.uploaded = map[string]string{}
	}
	f.uploaded[id] = string(body)
	return &storage.StoredObject{ID: id, URL: "https://cdn.example.com/" + id, Size: int64(len(body))}, nil
}

func (f *fakeStorage) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newTestService(t *testing.T) (*DefaultDocumentService, *fakeStorage) {
	t.Helper()
	users := userRepo.NewMemoryUserRepo()
	for _, id := range []string{"owner", "friend", "stranger"} {
		require.NoError(t, users.Create(context.Background(), &models.User{ID: id, Email: id + "@example.com", Username: id, UserType: models.UserTypeClient}))
	}
	store := &fakeStorage{}
	return &DefaultDocumentService{
		Repo:    documentRepo.NewMemoryDocumentRepo(),
		Users:   users,
		Storage: store,
	}, store
}

func TestCreateDocument(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	doc, err := svc.Create(ctx, "owner", CreateDocumentRequest{Title: " Lease ", FileURL: "https://files.example.com/lease.pdf", FileType: "pdf", FileSize: 1024})
	require.NoError(t, err)
	assert.Equal(t, "Lease", doc.Title)
	assert.Equal(t, "owner", doc.UserID)

	_, err = svc.Create(ctx, "owner", CreateDocumentRequest{Title: "No URL"})
	assert.ErrorIs(t, err, utils.ErrValidation)

	mine, err := svc.ListMine(ctx, "owner")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestUploadDocument(t *testing.T) {
	svc, store := newTestService(t)

	doc, err := svc.Upload(context.Background(), "owner", Upload{
		Filename:    "will.pdf",
		ContentType: "application/pdf",
		Size:        11,
		Body:        strings.NewReader("hello world"),
	})
	require.NoError(t, err)
	assert.Equal(t, "will.pdf", doc.Title)
	assert.Equal(t, "raw/documents/owner/will.pdf", doc.StorageID)
	assert.Equal(t, "https://cdn.example.com/raw/documents/owner/will.pdf", doc.FileURL)
	assert.Equal(t, int64(11), doc.FileSize)
	assert.Equal(t, "hello world", store.uploaded[doc.StorageID])
}

func TestUploadDocumentErrors(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.Upload(ctx, "owner", Upload{Filename: "big.pdf", Size: MaxUploadSize + 1, Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.Upload(ctx, "owner", Upload{Filename: "x.pdf"})
	assert.ErrorIs(t, err, utils.ErrValidation)

	store.err = errors.New("cloud down")
	_, err = svc.Upload(ctx, "owner", Upload{Filename: "x.pdf", Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, utils.ErrExternal)

	svc.Storage = storage.UnconfiguredStorage{}
	_, err = svc.Upload(ctx, "owner", Upload{Filename: "x.pdf", Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, utils.ErrExternal)
	assert.Equal(t, 502, utils.StatusFor(err))
}

func TestShareDocument(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	doc, err := svc.Create(ctx, "owner", CreateDocumentRequest{Title: "Lease", FileURL: "https://x/y.pdf"})
	require.NoError(t, err)

	_, err = svc.Share(ctx, "stranger", doc.ID, []string{"friend"})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = svc.Share(ctx, "owner", doc.ID, []string{"ghost"})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = svc.Share(ctx, "owner", doc.ID, nil)
	assert.ErrorIs(t, err, utils.ErrValidation)

	shared, err := svc.Share(ctx, "owner", doc.ID, []string{"friend", "friend"})
	require.NoError(t, err)
	assert.True(t, shared.IsShared)
	assert.Equal(t, []string{"friend"}, shared.SharedWith)

	withFriend, err := svc.ListSharedWithMe(ctx, "friend")
	require.NoError(t, err)
	require.Len(t, withFriend, 1)
	assert.Equal(t, doc.ID, withFriend[0].ID)

	withStranger, err := svc.ListSharedWithMe(ctx, "stranger")
	require.NoError(t, err)
	assert.Empty(t, withStranger)
}

func TestDeleteDocument(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	doc, err := svc.Upload(ctx, "owner", Upload{Filename: "a.pdf", Body: strings.NewReader("a")})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "stranger", doc.ID), utils.ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, "owner", "missing"), utils.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "owner", doc.ID))
	assert.Equal(t, []string{doc.StorageID}, store.deleted)

	assert.ErrorIs(t, svc.Delete(ctx, "owner", doc.ID), utils.ErrNotFound)
}
