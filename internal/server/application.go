package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"jobboard/internal/app"
	"jobboard/internal/apperr"
	"jobboard/internal/auth"
	"jobboard/internal/util"
	"jobboard/internal/validate"
)

// maxResumeBytes bounds the multipart body held in memory before spilling
// to the disk buffer.
const maxResumeBytes = 10 << 20

func (s *Server) handleApplyToJob(w http.ResponseWriter, r *http.Request, ident auth.Identity) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxResumeBytes)
	if err := r.ParseMultipartForm(maxResumeBytes); err != nil {
		writeError(w, r, apperr.New(http.StatusBadRequest, "invalid multipart body"))
		return
	}

	params := idParams{ID: r.FormValue("jobId")}
	if err := validate.Check(params); err != nil {
		writeError(w, r, err)
		return
	}

	in := app.ApplyInput{
		JobID:         params.ID,
		TechSkillsRaw: r.FormValue("userTechSkills"),
		SoftSkillsRaw: r.FormValue("userSoftSkills"),
	}

	file, header, err := r.FormFile("resume")
	switch {
	case err == nil:
		defer file.Close()
		// Buffer the upload locally under a fresh name; the workflow streams
		// it to the asset store and removes the buffered copy afterwards.
		name := uuid.NewString() + "-" + header.Filename
		path, saveErr := s.files.SaveUpload(name, file)
		if saveErr != nil {
			writeError(w, r, saveErr)
			return
		}
		in.ResumePath = path
		in.ResumeFilename = header.Filename
	case errors.Is(err, http.ErrMissingFile):
		// Left empty so the workflow reports the exact required-file error
		// after the job lookup.
	default:
		writeError(w, r, apperr.New(http.StatusBadRequest, "invalid resume upload"))
		return
	}

	res, err := s.app.ApplyToJob(r.Context(), ident, in)
	if err != nil {
		if res.Persisted {
			util.LoggerFromContext(r.Context()).Error("application persisted but cleanup failed", "error", err)
		}
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Application submitted successfully"})
}
