package http

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/paperext/paperext"
	"github.com/paperext/paperext/fs"
)

// maxUploadSize bounds PDF uploads at 50 MB.
const maxUploadSize = 50 << 20

// extractionResponse is the upload endpoint's response body.
type extractionResponse struct {
	Text        string `json:"text"`
	PDFFilename string `json:"pdf_filename"`
}

// handlePaperUpload runs the full pipeline on an uploaded PDF: store, trim,
// convert, extract, persist. A repeat upload of a known filename is answered
// from storage without reconversion; the Bloom filter makes the common
// first-upload case skip the database lookup.
func (s *Server) handlePaperUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, hdr, err := r.FormFile("pdf")
	if err != nil {
		s.Error(w, r, paperext.Errorf(paperext.EINVALID, "missing pdf form file"))
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(hdr.Filename), ".pdf") {
		s.Error(w, r, paperext.Errorf(paperext.EINVALID, "only PDF files are accepted"))
		return
	}

	pages := s.Pages
	if v := r.FormValue("pages"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.Error(w, r, paperext.Errorf(paperext.EINVALID, "invalid pages value %q", v))
			return
		}
		pages = n
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	path, existed, err := s.Files.Save(hdr.Filename, data)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	name := filepath.Base(path)

	if existed && s.Seen != nil && s.Seen.Test(name) {
		if paper, ok := s.findStored(r, name); ok {
			respondJSON(w, http.StatusOK, extractionResponse{
				Text:        paper.Text,
				PDFFilename: paper.Filename,
			})
			return
		}
	}

	trimmed := fs.TrimmedPath(path)
	if err := s.Trimmer.Trim(path, trimmed, pages); err != nil {
		s.Error(w, r, err)
		return
	}

	doc, err := s.Converter.Convert(r.Context(), trimmed)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	res, err := paperext.Extract(doc)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	text := paperext.SelectText(doc, res)

	paper := &paperext.Paper{
		Filename: name,
		Title:    res.Title,
		Text:     text,
		Pages:    pages,
	}
	if err := s.Papers.CreatePaper(r.Context(), paper); err != nil {
		s.Error(w, r, err)
		return
	}
	if s.Seen != nil {
		s.Seen.Add(name)
	}

	respondJSON(w, http.StatusOK, extractionResponse{
		Text:        text,
		PDFFilename: name,
	})
}

// findStored returns the most recent stored extraction for a filename.
func (s *Server) findStored(r *http.Request, name string) (*paperext.Paper, bool) {
	papers, err := s.Papers.FindPapers(r.Context(), paperext.PaperFilter{
		Filename: &name,
		Limit:    1,
	})
	if err != nil || len(papers) == 0 {
		return nil, false
	}
	return papers[0], true
}

func (s *Server) handlePaperList(w http.ResponseWriter, r *http.Request) {
	filter := paperext.PaperFilter{Limit: 50}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			filter.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filter.Offset = n
		}
	}
	if v := r.URL.Query().Get("filename"); v != "" {
		filter.Filename = &v
	}

	papers, err := s.Papers.FindPapers(r.Context(), filter)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	if papers == nil {
		papers = []*paperext.Paper{}
	}
	respondJSON(w, http.StatusOK, papers)
}

func (s *Server) handlePaperShow(w http.ResponseWriter, r *http.Request) {
	paper, err := s.Papers.FindPaperByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.Error(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, paper)
}

func (s *Server) handlePaperDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.Papers.DeletePaper(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
