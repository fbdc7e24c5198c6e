package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/jp903/scout/core"
	"github.com/jp903/scout/internal/logging"
	"github.com/jp903/scout/pkg/roe"
)

type handlers struct {
	auth     core.AuthHandler
	analyses core.AnalysisHandler
	log      logging.Logger
	cookie   cookieSettings
}

type authResponse struct {
	Success bool       `json:"success"`
	User    *core.User `json:"user"`
}

type verifyResponse struct {
	Valid bool       `json:"valid"`
	User  *core.User `json:"user"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type googleAuthRequest struct {
	Credential string `json:"credential"`
}

// analysisResponse is the stored record plus rounded display strings.
type analysisResponse struct {
	*core.ROEAnalysis
	Display roe.Display `json:"display"`
}

type analysisListResponse struct {
	Analyses []analysisResponse `json:"analyses"`
}

func newAnalysisResponse(a *core.ROEAnalysis) analysisResponse {
	return analysisResponse{
		ROEAnalysis: a,
		Display: roe.Format(roe.Result{
			NOI:          a.NOI,
			Equity:       a.Equity,
			UnleveredROE: a.UnleveredROE,
			LeveredROE:   a.LeveredROE,
		}),
	}
}

func clientMeta(c fiber.Ctx) core.ClientMeta {
	return core.ClientMeta{IPAddress: c.IP(), UserAgent: c.Get(fiber.HeaderUserAgent)}
}

// signedIn sets the session cookie and writes {success, user}.
func (h *handlers) signedIn(c fiber.Ctx, status int, result *core.AuthResult) error {
	h.cookie.set(c, result.Token)
	return c.Status(status).JSON(authResponse{Success: true, User: result.User})
}

func (h *handlers) signUp(c fiber.Ctx) error {
	var input core.SignUpInput
	if err := c.Bind().Body(&input); err != nil {
		return h.fail(c, core.ErrInvalidBody)
	}

	result, err := h.auth.SignUp(c.Context(), input, clientMeta(c))
	if err != nil {
		return h.fail(c, err)
	}
	return h.signedIn(c, http.StatusCreated, result)
}

func (h *handlers) signIn(c fiber.Ctx) error {
	var input core.SignInInput
	if err := c.Bind().Body(&input); err != nil {
		return h.fail(c, core.ErrInvalidBody)
	}

	result, err := h.auth.SignIn(c.Context(), input, clientMeta(c))
	if err != nil {
		return h.fail(c, err)
	}
	return h.signedIn(c, http.StatusOK, result)
}

func (h *handlers) googleAuth(c fiber.Ctx) error {
	var input googleAuthRequest
	if err := c.Bind().Body(&input); err != nil {
		return h.fail(c, core.ErrInvalidBody)
	}

	result, err := h.auth.GoogleAuth(c.Context(), input.Credential, clientMeta(c))
	if err != nil {
		return h.fail(c, err)
	}
	return h.signedIn(c, http.StatusOK, result)
}

// signOut always succeeds for the caller; a failed delete is only logged.
func (h *handlers) signOut(c fiber.Ctx) error {
	if err := h.auth.SignOut(c.Context(), extractToken(c)); err != nil {
		h.log.Error(c.Context(), "sign-out failed", "error", err)
	}

	h.cookie.clear(c)
	return c.Status(http.StatusOK).JSON(successResponse{Success: true})
}

func (h *handlers) verify(c fiber.Ctx) error {
	user, err := h.auth.VerifySession(c.Context(), extractToken(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(verifyResponse{Valid: user != nil, User: user})
}

func (h *handlers) refresh(c fiber.Ctx) error {
	result, err := h.auth.Refresh(c.Context(), extractToken(c), clientMeta(c))
	if err != nil {
		return h.fail(c, err)
	}
	return h.signedIn(c, http.StatusOK, result)
}

func (h *handlers) analyze(c fiber.Ctx) error {
	var input core.AnalysisInput
	if err := c.Bind().Body(&input); err != nil {
		return h.fail(c, core.ErrInvalidBody)
	}

	a, err := h.analyses.Analyze(c.Context(), currentUser(c).ID, input)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(newAnalysisResponse(a))
}

func (h *handlers) listAnalyses(c fiber.Ctx) error {
	list, err := h.analyses.ListAnalyses(c.Context(), currentUser(c).ID)
	if err != nil {
		return h.fail(c, err)
	}

	resp := analysisListResponse{Analyses: make([]analysisResponse, 0, len(list))}
	for _, a := range list {
		resp.Analyses = append(resp.Analyses, newAnalysisResponse(a))
	}
	return c.Status(http.StatusOK).JSON(resp)
}
