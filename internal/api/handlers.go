package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/abhisek/hairharmony/internal/analysis"
	"github.com/abhisek/hairharmony/internal/quiz"
	"github.com/abhisek/hairharmony/internal/season"
)

type errorResponse struct {
	Error string `json:"error"`
}

type seasonResponse struct {
	Season season.Season `json:"season"`
}

type questionsResponse struct {
	Questions []quiz.Question `json:"questions"`
}

// analyzeRequest is the body of every analysis endpoint.
type analyzeRequest struct {
	Answers json.RawMessage `json:"answers"`
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) questions(c echo.Context) error {
	return c.JSON(http.StatusOK, questionsResponse{Questions: quiz.Questions()})
}

// analyzePreview returns the censored preview. A malformed body is analyzed
// as an empty submission: the quiz never shows an error.
func (s *Server) analyzePreview(c echo.Context) error {
	ctx := c.Request().Context()
	answers, err := readAnswers(c.Request().Body)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("unreadable preview request, analyzing empty answers")
	}
	return c.JSON(http.StatusOK, s.svc.Preview(ctx, answers))
}

// analyzeFull returns the full analysis and saves it when the request
// carries a client key. Save failures are logged, never returned.
func (s *Server) analyzeFull(c echo.Context) error {
	ctx := c.Request().Context()
	logger := zerolog.Ctx(ctx)

	answers, err := readAnswers(c.Request().Body)
	if err != nil {
		logger.Warn().Err(err).Msg("unreadable analysis request, analyzing empty answers")
	}
	res := s.svc.Analyze(ctx, answers)

	if key := c.Request().Header.Get(ClientKeyHeader); key != "" && s.results != nil {
		rec, err := analysis.NewRecord(key, answers, res)
		if err == nil {
			err = s.results.Save(ctx, rec)
		}
		if err != nil {
			logger.Error().Err(err).Str("client_key", key).Msg("failed to save result")
		} else {
			s.metrics.IncSavedResult()
		}
	}

	return c.JSON(http.StatusOK, res)
}

// analyzeSeason returns only the season. Unlike the other analysis routes a
// body without an answers object is rejected.
func (s *Server) analyzeSeason(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid answers provided"})
	}
	var req analyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		// Unparseable bodies still get a season, as the quiz expects one.
		zerolog.Ctx(ctx).Warn().Err(err).Msg("unreadable season request, analyzing empty answers")
		return c.JSON(http.StatusOK, seasonResponse{Season: s.svc.Classify(ctx, nil)})
	}

	answers, err := decodeAnswers(req.Answers)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid answers provided"})
	}
	return c.JSON(http.StatusOK, seasonResponse{Season: s.svc.Classify(ctx, answers)})
}

func (s *Server) result(c echo.Context) error {
	key := c.Param("key")
	if s.results == nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "result not found"})
	}

	rec, err := s.results.Get(c.Request().Context(), key)
	if err != nil {
		return fmt.Errorf("load result: %w", err)
	}
	if rec == nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "result not found"})
	}

	res, err := analysis.ResultFromRecord(rec)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) guide(c echo.Context) error {
	sn, err := season.Parse(c.Param("season"))
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "unknown season"})
	}
	return c.Redirect(http.StatusFound, s.svc.Guides().PDFURL(sn))
}

func (s *Server) checkout(c echo.Context) error {
	return c.Redirect(http.StatusFound, s.svc.Guides().CheckoutURL())
}

// readAnswers decodes an analysis body. On error the returned answers are
// empty.
func readAnswers(r io.Reader) (quiz.Answers, error) {
	var req analyzeRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return quiz.Answers{}, fmt.Errorf("decode body: %w", err)
	}
	answers, err := decodeAnswers(req.Answers)
	if err != nil {
		return quiz.Answers{}, err
	}
	return answers, nil
}

// decodeAnswers accepts an object keyed by question number. Values may be
// strings, numbers or booleans; anything else is skipped.
func decodeAnswers(raw json.RawMessage) (quiz.Answers, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, fmt.Errorf("answers must be a JSON object")
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}

	m := make(map[string]string, len(obj))
	for k, v := range obj {
		switch v := v.(type) {
		case string:
			m[k] = v
		case float64:
			m[k] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			m[k] = strconv.FormatBool(v)
		}
	}
	return quiz.ParseAnswers(m), nil
}
