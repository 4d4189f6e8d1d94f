package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/handlers/navigator/v1alpha1"
	"github.com/KirkDiggler/rpg-codex/internal/orchestrators/browser"
	browsermock "github.com/KirkDiggler/rpg-codex/internal/orchestrators/browser/mock"
	"github.com/KirkDiggler/rpg-codex/internal/pkg/idgen"
	catalogrepo "github.com/KirkDiggler/rpg-codex/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/mountskills"
)

const bufSize = 1024 * 1024

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockBrowser *browsermock.MockService
	server      *grpc.Server
	conn        *grpc.ClientConn
	client      v1alpha1.NavigatorServiceClient
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBrowser = browsermock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{Browser: s.mockBrowser})
	s.Require().NoError(err)

	lis := bufconn.Listen(bufSize)
	s.server = grpc.NewServer(grpc.UnaryInterceptor(v1alpha1.RequestIDInterceptor(idgen.NewSequential("req"))))
	v1alpha1.RegisterNavigatorServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err)
	s.client = v1alpha1.NewNavigatorServiceClient(s.conn)
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandlerRequiresBrowser() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(nil)
	s.Assert().Error(err)
}

func (s *HandlerTestSuite) TestNavigateRoundTrip() {
	screen := &browser.Screen{
		Title:   "Events",
		Body:    "Page 1 of 1. Pick one:",
		Image:   "events/red-cliffs.jpg",
		Caption: "Red Cliffs",
		Choices: [][]browser.Choice{
			{{Label: "Red Cliffs", Token: "v:ev:red-cliffs"}},
			{{Label: "Menu", Token: "m"}},
		},
	}

	s.mockBrowser.EXPECT().
		Handle(gomock.Any(), &browser.HandleInput{
			UserID: 42,
			Token:  "l:ev:0",
		}).
		Return(&browser.HandleOutput{Screen: screen}, nil)

	req, err := (&v1alpha1.NavigateRequest{UserID: 42, Token: "l:ev:0"}).ToStruct()
	s.Require().NoError(err)

	resp, err := s.client.Navigate(context.Background(), req)
	s.Require().NoError(err)

	s.Assert().Equal(screen, v1alpha1.ScreenFromStruct(resp))
	s.Assert().Equal("req_1", resp.GetFields()[v1alpha1.FieldRequestID].GetStringValue())
}

func (s *HandlerTestSuite) TestNavigateRequestIDsAreUnique() {
	s.mockBrowser.EXPECT().
		Handle(gomock.Any(), gomock.Any()).
		Return(&browser.HandleOutput{Screen: &browser.Screen{Title: "Catalog"}}, nil).
		Times(2)

	first, err := s.client.Navigate(context.Background(), &structpb.Struct{})
	s.Require().NoError(err)
	second, err := s.client.Navigate(context.Background(), &structpb.Struct{})
	s.Require().NoError(err)

	s.Assert().NotEqual(
		first.GetFields()[v1alpha1.FieldRequestID].GetStringValue(),
		second.GetFields()[v1alpha1.FieldRequestID].GetStringValue())
}

func (s *HandlerTestSuite) TestNavigateSearchCarriesDomain() {
	s.mockBrowser.EXPECT().
		Handle(gomock.Any(), &browser.HandleInput{
			Query:  "lu bu",
			Domain: catalog.DomainHero,
		}).
		Return(&browser.HandleOutput{Screen: &browser.Screen{Title: `Heroes matching "lu bu"`}}, nil)

	req, err := structpb.NewStruct(map[string]any{
		v1alpha1.FieldQuery:  "lu bu",
		v1alpha1.FieldDomain: "hero",
	})
	s.Require().NoError(err)

	resp, err := s.client.Navigate(context.Background(), req)
	s.Require().NoError(err)
	s.Assert().Equal(`Heroes matching "lu bu"`, v1alpha1.ScreenFromStruct(resp).Title)
}

func (s *HandlerTestSuite) TestNavigateRejectsBadRequests() {
	testCases := []struct {
		name   string
		fields map[string]any
	}{
		{"unknown domain", map[string]any{v1alpha1.FieldDomain: "weapons"}},
		{"non numeric user", map[string]any{v1alpha1.FieldUserID: "abc"}},
		{"fractional user", map[string]any{v1alpha1.FieldUserID: 1.5}},
		{"boolean user", map[string]any{v1alpha1.FieldUserID: true}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req, err := structpb.NewStruct(tc.fields)
			s.Require().NoError(err)

			_, err = s.client.Navigate(context.Background(), req)
			s.Require().Error(err)
			st, _ := status.FromError(err)
			s.Assert().Equal(codes.InvalidArgument, st.Code())
		})
	}
}

func (s *HandlerTestSuite) TestNavigateInternalError() {
	s.mockBrowser.EXPECT().
		Handle(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("store closed"))

	_, err := s.client.Navigate(context.Background(), &structpb.Struct{})
	s.Require().Error(err)

	back := errors.FromGRPCError(err)
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(back))
	s.Assert().Equal("store closed", errors.GetMessage(back))
}

func (s *HandlerTestSuite) TestReloadPermissionDenied() {
	s.mockBrowser.EXPECT().
		Reload(gomock.Any(), &browser.ReloadInput{UserID: 7}).
		Return(nil, errors.PermissionDenied("admins only"))

	req, err := v1alpha1.UserIDRequest(7)
	s.Require().NoError(err)

	_, err = s.client.Reload(context.Background(), req)
	s.Require().Error(err)
	st, _ := status.FromError(err)
	s.Assert().Equal(codes.PermissionDenied, st.Code())
	s.Assert().Equal("admins only", st.Message())
}

func (s *HandlerTestSuite) TestReloadResults() {
	s.mockBrowser.EXPECT().
		Reload(gomock.Any(), &browser.ReloadInput{UserID: 1}).
		Return(&browser.ReloadOutput{
			Catalogs: []catalogrepo.ReloadResult{
				{Domain: catalog.DomainEvent, Records: 3, LoadedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)},
				{Domain: catalog.DomainHero, Err: errors.SourceUnavailablef("heroes.json: file missing")},
			},
			Mounts: []mountskills.ReloadResult{
				{MountType: "spears", Skills: 4},
			},
			Screen: &browser.Screen{Title: "Reloaded with 1 failure(s):"},
		}, nil)

	req, err := v1alpha1.UserIDRequest(1)
	s.Require().NoError(err)

	resp, err := s.client.Reload(context.Background(), req)
	s.Require().NoError(err)
	s.Assert().Equal("Reloaded with 1 failure(s):", v1alpha1.ScreenFromStruct(resp).Title)

	results := resp.GetFields()[v1alpha1.FieldResults].GetListValue().GetValues()
	s.Require().Len(results, 3)

	events := results[0].GetStructValue().GetFields()
	s.Assert().Equal("event", events[v1alpha1.FieldName].GetStringValue())
	s.Assert().Equal(float64(3), events[v1alpha1.FieldCount].GetNumberValue())
	s.Assert().NotContains(events, v1alpha1.FieldError)
	s.Assert().Equal("2025-03-01T12:00:00Z", events[v1alpha1.FieldLoadedAt].GetStringValue())

	heroes := results[1].GetStructValue().GetFields()
	s.Assert().Contains(heroes[v1alpha1.FieldError].GetStringValue(), "file missing")
	s.Assert().NotContains(heroes, v1alpha1.FieldLoadedAt)

	spears := results[2].GetStructValue().GetFields()
	s.Assert().Equal("spears", spears[v1alpha1.FieldName].GetStringValue())
	s.Assert().Equal(float64(4), spears[v1alpha1.FieldCount].GetNumberValue())
}

func (s *HandlerTestSuite) TestValidateIssues() {
	issues := []errors.Issue{
		{Source: "events.json", Path: "[2].id", Message: "is required"},
		{Source: "spears.json", Path: "slot1[0].image", Message: "prefix 'infantry' != 'spears'"},
	}

	s.mockBrowser.EXPECT().
		Validate(gomock.Any(), &browser.ValidateInput{UserID: 1}).
		Return(&browser.ValidateOutput{
			Issues: issues,
			Screen: &browser.Screen{Title: "Validate", Body: "Found 2 issue(s):"},
		}, nil)

	req, err := v1alpha1.UserIDRequest(1)
	s.Require().NoError(err)

	resp, err := s.client.Validate(context.Background(), req)
	s.Require().NoError(err)
	s.Assert().Equal(issues, v1alpha1.IssuesFromStruct(resp))
	s.Assert().Equal("Found 2 issue(s):", v1alpha1.ScreenFromStruct(resp).Body)
}

func (s *HandlerTestSuite) TestValidateClean() {
	s.mockBrowser.EXPECT().
		Validate(gomock.Any(), gomock.Any()).
		Return(&browser.ValidateOutput{Screen: &browser.Screen{Body: "All sources look good."}}, nil)

	resp, err := s.client.Validate(context.Background(), &structpb.Struct{})
	s.Require().NoError(err)
	s.Assert().Nil(v1alpha1.IssuesFromStruct(resp))
}
