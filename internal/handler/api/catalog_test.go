//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"groomer-crm/internal/domain/client"
	"groomer-crm/internal/handler/api"
	resdto "groomer-crm/internal/handler/dto/response"
	"groomer-crm/internal/pkg/errs"
	"groomer-crm/internal/usecase/commands"
	"groomer-crm/internal/usecase/queries"
	"groomer-crm/tests/common/httptest"
	commandsmock "groomer-crm/tests/mock/commands"
	queriesmock "groomer-crm/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func ownerRouter(ownerID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", ownerID) })
	return r
}

func TestClientHandler(t *testing.T) {
	ownerID := uuid.New()
	body := map[string]any{"first_name": "Sarah", "last_name": "Johnson", "phone": "555-0100"}

	setup := func(t *testing.T) (*gin.Engine, *commandsmock.MockClientCommands, *queriesmock.MockClientQueries) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockClientCommands(ctrl)
		qs := queriesmock.NewMockClientQueries(ctrl)
		h := api.NewClientHandler(cmds, qs)
		r := ownerRouter(ownerID)
		r.POST("/clients", h.Create)
		r.GET("/clients/:id", h.Get)
		r.DELETE("/clients/:id", h.Delete)
		return r, cmds, qs
	}

	t.Run("作成すると201とIDを返す", func(t *testing.T) {
		r, cmds, _ := setup(t)
		id := uuid.New()
		cmds.EXPECT().Create(gomock.Any(), ownerID, client.Profile{FirstName: "Sarah", LastName: "Johnson", Phone: "555-0100"}).Return(id, nil)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/clients", body, "")

		var res resdto.CreatedResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &res)
		assert.Equal(t, id, res.ID)
	})

	t.Run("無料プランの上限で403", func(t *testing.T) {
		r, cmds, _ := setup(t)
		cmds.EXPECT().Create(gomock.Any(), ownerID, gomock.Any()).
			Return(uuid.Nil, errs.Mark(errs.New("limit reached"), commands.ErrPlanLimit))

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/clients", body, "")
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Upgrade to Pro")
	})

	t.Run("姓が空なら400", func(t *testing.T) {
		r, _, _ := setup(t)
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/clients", map[string]any{"first_name": "Sarah"}, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid last_name")
	})

	t.Run("ペット付きで取得", func(t *testing.T) {
		r, _, qs := setup(t)
		id := uuid.New()
		qs.EXPECT().Get(gomock.Any(), ownerID, id).Return(&queries.ClientDetailView{
			ClientView: queries.ClientView{ID: id, FirstName: "Sarah", LastName: "Johnson", PetCount: 1},
			Pets:       []*queries.PetView{{Name: "Max"}},
		}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/clients/"+id.String(), nil, "")

		var res queries.ClientDetailView
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		assert.Len(t, res.Pets, 1)
	})

	t.Run("他オーナーのクライアント削除は404", func(t *testing.T) {
		r, cmds, _ := setup(t)
		id := uuid.New()
		cmds.EXPECT().Delete(gomock.Any(), ownerID, id).Return(commands.ErrClientNotFound)

		rec := httptest.PerformRequest(t, r, http.MethodDelete, "/clients/"+id.String(), nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Client not found")
	})
}

func TestServiceHandler(t *testing.T) {
	ownerID := uuid.New()
	body := map[string]any{"name": "Teeth Brushing", "duration_minutes": 15, "price_cents": 1200}

	setup := func(t *testing.T) (*gin.Engine, *commandsmock.MockServiceCommands, *queriesmock.MockServiceQueries) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockServiceCommands(ctrl)
		qs := queriesmock.NewMockServiceQueries(ctrl)
		h := api.NewServiceHandler(cmds, qs)
		r := ownerRouter(ownerID)
		r.GET("/services", h.List)
		r.POST("/services", h.Create)
		r.PATCH("/services/:id/toggle", h.Toggle)
		return r, cmds, qs
	}

	t.Run("同名サービスは409", func(t *testing.T) {
		r, cmds, _ := setup(t)
		cmds.EXPECT().Create(gomock.Any(), ownerID, gomock.Any()).Return(uuid.Nil, commands.ErrDuplicateService)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/services", body, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already exists")
	})

	t.Run("is_active省略時は有効で作成", func(t *testing.T) {
		r, cmds, _ := setup(t)
		cmds.EXPECT().Create(gomock.Any(), ownerID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, _ any) (uuid.UUID, error) {
				return uuid.New(), nil
			})

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/services", body, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)
	})

	t.Run("トグルは新しい状態を返す", func(t *testing.T) {
		r, cmds, _ := setup(t)
		id := uuid.New()
		cmds.EXPECT().Toggle(gomock.Any(), ownerID, id).Return(false, nil)

		rec := httptest.PerformRequest(t, r, http.MethodPatch, "/services/"+id.String()+"/toggle", nil, "")

		var res resdto.ToggleResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		assert.False(t, res.IsActive)
		assert.Equal(t, id, res.ID)
	})

	t.Run("active=trueで有効なものだけ", func(t *testing.T) {
		r, _, qs := setup(t)
		qs.EXPECT().List(gomock.Any(), ownerID, true).Return([]*queries.ServiceView{{Name: "Nail Trim", IsActive: true}}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/services?active=true", nil, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})
}
