package clients

import (
	"context"
	"retail-service/api/dto"
	"retail-service/service/meta"
	"retail-service/service/models"
	"retail-service/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (*Service, *testutil.TestDB) {
	tdb := testutil.NewTestDB()
	t.Cleanup(tdb.Close)
	return NewService(tdb.DB), tdb
}

func TestCreateClient_Success(t *testing.T) {
	svc, tdb := setupService(t)

	client, err := svc.CreateClient(context.Background(), dto.CreateClientDto{
		Name:  " Acme Corporation ",
		Email: "Contact@Acme.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, client.ID)
	assert.Equal(t, "Acme Corporation", client.Name)
	assert.Equal(t, "contact@acme.com", client.Email)
	assert.Equal(t, meta.UserStatusActive, client.Status)

	var stored models.Client
	require.NoError(t, tdb.DB.First(&stored, "id = ?", client.ID).Error)
	assert.Equal(t, meta.UserStatusActive, stored.Status)
}

func TestCreateClient_ValidationFailure(t *testing.T) {
	svc, tdb := setupService(t)

	_, err := svc.CreateClient(context.Background(), dto.CreateClientDto{Name: "", Email: "not-an-email"})
	require.Error(t, err)

	var errs dto.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, []string{"name", "email"}, errs.Fields())

	var count int64
	tdb.DB.Model(&models.Client{}).Count(&count)
	assert.Zero(t, count, "校验失败时不应写入数据库")
}

func TestCreateClient_DuplicateEmail(t *testing.T) {
	svc, tdb := setupService(t)
	testutil.NewTestDataFactory(tdb.DB).CreateClient(func(c *models.Client) {
		c.Email = "contact@acme.com"
	})

	_, err := svc.CreateClient(context.Background(), dto.CreateClientDto{
		Name:  "Acme",
		Email: "CONTACT@acme.com",
	})
	assert.ErrorIs(t, err, ErrClientExists)
}

func TestInsertClient_UniqueIndexConflict(t *testing.T) {
	_, tdb := setupService(t)
	testutil.NewTestDataFactory(tdb.DB).CreateClient(func(c *models.Client) {
		c.Email = "race@acme.com"
	})

	err := insertClient(tdb.DB, &models.Client{Name: "Race", Email: "race@acme.com"})
	assert.ErrorIs(t, err, ErrClientExists)
}

func TestGetClient(t *testing.T) {
	svc, tdb := setupService(t)
	created := testutil.NewTestDataFactory(tdb.DB).CreateClient()

	client, err := svc.GetClient(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, client.Email)

	_, err = svc.GetClient(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestListClients(t *testing.T) {
	svc, tdb := setupService(t)
	factory := testutil.NewTestDataFactory(tdb.DB)
	for i := 0; i < 5; i++ {
		factory.CreateClient()
	}

	clients, total, err := svc.ListClients(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, clients, 2)

	clients, _, err = svc.ListClients(context.Background(), 3, 2)
	require.NoError(t, err)
	assert.Len(t, clients, 1)

	clients, _, err = svc.ListClients(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, clients, 5)
}
