package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	embedded "github.com/goserg/vegasgolf"
	"github.com/goserg/vegasgolf/internal/config"
	"github.com/goserg/vegasgolf/internal/domain"
	"github.com/goserg/vegasgolf/internal/service"
	"github.com/goserg/vegasgolf/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Server struct {
	roundService *service.RoundService
	app          *fiber.App
	cfg          config.Server
	log          *logrus.Entry
}

func New(rs *service.RoundService, cfg config.Server, l *logrus.Logger) (*Server, error) {
	server := Server{
		roundService: rs,
		cfg:          cfg,
		log:          l.WithField("name", "web"),
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)
	engine.AddFunc("ScorecardPath", webpath.Scorecard)

	app := fiber.New(fiber.Config{
		Views:                 engine,
		ErrorHandler:          server.handleError,
		DisableStartupMessage: true,
	})
	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.Rounds)
	})
	app.Get(webpath.Rounds, server.handleHistory)

	app.Get(webpath.ApiRoundOptions, server.handleRoundOptions)
	app.Get(webpath.ApiRounds, server.handleActiveRounds)
	app.Post(webpath.ApiRounds, server.handleCreateRound)
	app.Post(webpath.ApiRoundsImport, server.handleImport)
	app.Get(webpath.ApiRound, server.handleGetRound)
	app.Post(webpath.ApiRoundHoles, server.handleSubmitHole)
	app.Delete(webpath.ApiRoundLastHole, server.handleBack)
	app.Get(webpath.ApiRoundScorecard, server.handleScorecard)
	app.Get(webpath.ApiRoundExport, server.handleExport)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	s.log.WithField("port", s.cfg.Port).Info("listening")
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	var scoreErr *service.ScoreError
	switch {
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
	case errors.Is(err, service.ErrRoundNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrRoundFinished),
		errors.Is(err, domain.ErrNothingToUndo),
		errors.Is(err, domain.ErrHoleAlreadyPlayed),
		errors.Is(err, service.ErrRoundExists):
		status = fiber.StatusConflict
	case errors.As(err, &scoreErr),
		errors.Is(err, service.ErrInvalidImport),
		errors.Is(err, service.ErrEmptyPlayerName),
		errors.Is(err, domain.ErrUnknownRoundOption),
		errors.Is(err, ErrPlayersCount),
		errors.Is(err, ErrScoresCount),
		errors.Is(err, ErrMissingRound):
		status = fiber.StatusBadRequest
	}
	if status >= fiber.StatusInternalServerError {
		s.log.WithError(err).WithField("path", ctx.Path()).Error("request failed")
	}
	return ctx.Status(status).JSON(errorResponse{Errors: messages(err)})
}

func roundID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid round id")
	}
	return id, nil
}

func (s *Server) handleRoundOptions(ctx *fiber.Ctx) error {
	return ctx.JSON(domain.RoundOptions())
}

func (s *Server) handleActiveRounds(ctx *fiber.Ctx) error {
	rounds := s.roundService.Active()
	docs := make([]service.RoundDocument, 0, len(rounds))
	for i := range rounds {
		docs = append(docs, service.NewRoundDocument(rounds[i]))
	}
	return ctx.JSON(docs)
}

func (s *Server) handleCreateRound(ctx *fiber.Ctx) error {
	var req createRound
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		return err
	}
	round, err := s.roundService.NewRound(req.names(), req.Round)
	if err != nil {
		return err
	}
	ctx.Location(webpath.Round(round.ID.String()))
	return ctx.Status(fiber.StatusCreated).JSON(service.NewRoundDocument(round))
}

func (s *Server) handleGetRound(ctx *fiber.Ctx) error {
	id, err := roundID(ctx)
	if err != nil {
		return err
	}
	round, err := s.roundService.Get(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(service.NewRoundDocument(round))
}

func (s *Server) handleSubmitHole(ctx *fiber.Ctx) error {
	id, err := roundID(ctx)
	if err != nil {
		return err
	}
	var req submitHole
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		return err
	}
	result, round, err := s.roundService.SubmitHole(ctx.UserContext(), id, req.raw())
	if err != nil {
		return err
	}
	resp := holeResponse{
		Result: service.NewHoleDocument(result),
		Round:  service.NewRoundDocument(round),
	}
	if round.Finished {
		resp.Summary = service.Summary(round)
	}
	return ctx.JSON(resp)
}

func (s *Server) handleBack(ctx *fiber.Ctx) error {
	id, err := roundID(ctx)
	if err != nil {
		return err
	}
	round, err := s.roundService.Back(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(service.NewRoundDocument(round))
}

func (s *Server) handleScorecard(ctx *fiber.Ctx) error {
	id, err := roundID(ctx)
	if err != nil {
		return err
	}
	round, err := s.roundService.Get(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	card := service.BuildScorecard(round)
	return ctx.Render("scorecard", newPage("Scorecard").With("Card", card), "layouts/main")
}

func (s *Server) handleExport(ctx *fiber.Ctx) error {
	id, err := roundID(ctx)
	if err != nil {
		return err
	}
	data, err := s.roundService.Export(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	ctx.Attachment("round-" + id.String() + ".json")
	return ctx.Send(data)
}

func (s *Server) handleImport(ctx *fiber.Ctx) error {
	round, err := s.roundService.Import(ctx.UserContext(), ctx.Body())
	if err != nil {
		return err
	}
	ctx.Location(webpath.Round(round.ID.String()))
	return ctx.Status(fiber.StatusCreated).JSON(service.NewRoundDocument(round))
}

func (s *Server) handleHistory(ctx *fiber.Ctx) error {
	rounds, err := s.roundService.History(ctx.UserContext())
	if err != nil {
		return err
	}
	cards := make([]service.Scorecard, 0, len(rounds))
	for i := range rounds {
		cards = append(cards, service.BuildScorecard(rounds[i]))
	}
	return ctx.Render("rounds", newPage("Rounds").With("Cards", cards), "layouts/main")
}

func formatDate(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}
