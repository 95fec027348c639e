package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"gestion-notes/internal/dto"
	"gestion-notes/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Mock EtudiantService ──

type mockEtudiantService struct {
	createResult *dto.EtudiantResponse
	createErr    error
	listResult   []dto.EtudiantStatsResponse
	listErr      error
	getResult    *dto.EtudiantDetailResponse
	getErr       error
	deleteErr    error
}

func (m *mockEtudiantService) Create(_ context.Context, _ *dto.CreateEtudiantRequest) (*dto.EtudiantResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockEtudiantService) List(_ context.Context) ([]dto.EtudiantStatsResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockEtudiantService) GetByID(_ context.Context, _ uint) (*dto.EtudiantDetailResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockEtudiantService) Delete(_ context.Context, _ uint) error {
	return m.deleteErr
}

// ── Mock NoteService ──

type mockNoteService struct {
	createResult *dto.NoteResponse
	createErr    error
	listResult   []dto.NoteDetailResponse
	listErr      error
	deleteErr    error
}

func (m *mockNoteService) Create(_ context.Context, _ *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockNoteService) List(_ context.Context) ([]dto.NoteDetailResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockNoteService) Delete(_ context.Context, _ uint) error {
	return m.deleteErr
}

// ── Mock ExportService ──

type mockExportService struct {
	detailResult *dto.EtudiantDetailResponse
	detailErr    error
	excelBuf     *bytes.Buffer
	excelName    string
	excelErr     error
}

func (m *mockExportService) ExportEtudiant(_ context.Context, _ uint) (*dto.EtudiantDetailResponse, error) {
	return m.detailResult, m.detailErr
}
func (m *mockExportService) ExportEtudiantsExcel(_ context.Context) (*bytes.Buffer, string, error) {
	return m.excelBuf, m.excelName, m.excelErr
}

// ── Aides de test ──

func setupRouter(etudiantSvc service.EtudiantService, noteSvc service.NoteService, exportSvc service.ExportService) *gin.Engine {
	r := gin.New()
	h := &Handler{
		Etudiant: NewEtudiantHandler(etudiantSvc),
		Note:     NewNoteHandler(noteSvc),
		Export:   NewExportHandler(exportSvc),
	}
	api := r.Group("/api")
	api.POST("/etudiants", h.Etudiant.CreateEtudiant)
	api.GET("/etudiants", h.Etudiant.ListEtudiants)
	api.GET("/etudiants/:id", h.Etudiant.GetEtudiant)
	api.DELETE("/etudiants/:id", h.Etudiant.DeleteEtudiant)
	api.POST("/notes", h.Note.CreateNote)
	api.GET("/notes", h.Note.ListNotes)
	api.DELETE("/notes/:id", h.Note.DeleteNote)
	api.GET("/export/etudiant/:id", h.Export.ExportEtudiant)
	api.GET("/export/etudiants", h.Export.ExportEtudiants)
	return r
}

func performRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("décodage du corps de réponse: %v", err)
	}
	return body
}

// ── Étudiants ──

func TestEtudiantHandler_GetEtudiant_IDInvalide(t *testing.T) {
	r := setupRouter(&mockEtudiantService{}, &mockNoteService{}, &mockExportService{})

	for _, id := range []string{"abc", "-3", "0", "1.5"} {
		w := performRequest(r, http.MethodGet, "/api/etudiants/"+id, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("id=%q: attendu 400, obtenu %d", id, w.Code)
			continue
		}
		body := decodeBody(t, w)
		if body["success"] != false || body["error"] != "ID invalide" {
			t.Errorf("id=%q: enveloppe d'erreur inattendue: %v", id, body)
		}
	}
}

func TestEtudiantHandler_DeleteEtudiant_IDInvalide(t *testing.T) {
	r := setupRouter(&mockEtudiantService{}, &mockNoteService{}, &mockExportService{})

	w := performRequest(r, http.MethodDelete, "/api/etudiants/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("attendu 400, obtenu %d", w.Code)
	}
}

func TestEtudiantHandler_GetEtudiant_NotFound(t *testing.T) {
	r := setupRouter(&mockEtudiantService{getErr: service.ErrEtudiantNotFound},
		&mockNoteService{}, &mockExportService{})

	w := performRequest(r, http.MethodGet, "/api/etudiants/42", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("attendu 404, obtenu %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Étudiant non trouvé" {
		t.Errorf("message inattendu: %v", body["error"])
	}
}

func TestEtudiantHandler_CreateEtudiant_Success(t *testing.T) {
	r := setupRouter(&mockEtudiantService{
		createResult: &dto.EtudiantResponse{ID: 1, Nom: "Martin", Prenom: "Luc", Matricule: "M001"},
	}, &mockNoteService{}, &mockExportService{})

	w := performRequest(r, http.MethodPost, "/api/etudiants",
		`{"nom":"Martin","prenom":"Luc","matricule":"M001"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("attendu 201, obtenu %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Error("attendu success=true")
	}
	etudiant, ok := body["etudiant"].(map[string]interface{})
	if !ok {
		t.Fatalf("champ etudiant absent: %v", body)
	}
	if etudiant["nom"] != "Martin" {
		t.Errorf("attendu nom=Martin, obtenu %v", etudiant["nom"])
	}
}

func TestEtudiantHandler_CreateEtudiant_Validation(t *testing.T) {
	r := setupRouter(&mockEtudiantService{
		createErr: &service.ValidationError{Champ: "nom", Message: "Le champ nom est obligatoire"},
	}, &mockNoteService{}, &mockExportService{})

	w := performRequest(r, http.MethodPost, "/api/etudiants", `{"prenom":"Luc"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("attendu 400, obtenu %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Le champ nom est obligatoire" {
		t.Errorf("message inattendu: %v", body["error"])
	}
}

func TestEtudiantHandler_CreateEtudiant_MatriculeDuplique(t *testing.T) {
	r := setupRouter(&mockEtudiantService{createErr: service.ErrMatriculeExiste},
		&mockNoteService{}, &mockExportService{})

	w := performRequest(r, http.MethodPost, "/api/etudiants",
		`{"nom":"Martin","prenom":"Luc","matricule":"M001"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("attendu 400, obtenu %d", w.Code)
	}
}

func TestEtudiantHandler_ListEtudiants_TableauNu(t *testing.T) {
	moyenne := 14.5
	r := setupRouter(&mockEtudiantService{
		listResult: []dto.EtudiantStatsResponse{
			{
				EtudiantResponse: dto.EtudiantResponse{ID: 1, Nom: "Martin", Prenom: "Luc"},
				NombreNotes:      2,
				Moyenne:          &moyenne,
			},
			{
				EtudiantResponse: dto.EtudiantResponse{ID: 2, Nom: "Zola", Prenom: "Anne"},
			},
		},
	}, &mockNoteService{}, &mockExportService{})

	w := performRequest(r, http.MethodGet, "/api/etudiants", "")
	if w.Code != http.StatusOK {
		t.Fatalf("attendu 200, obtenu %d", w.Code)
	}

	var list []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("la liste doit être un tableau JSON nu: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("attendu 2 éléments, obtenu %d", len(list))
	}
	if list[0]["moyenne"] != 14.5 {
		t.Errorf("attendu moyenne=14.5, obtenu %v", list[0]["moyenne"])
	}
	// null explicite pour un étudiant sans note, jamais 0
	if v, present := list[1]["moyenne"]; !present || v != nil {
		t.Errorf("attendu moyenne=null, obtenu %v (présent=%v)", v, present)
	}
}

// ── Notes ──

func TestNoteHandler_CreateNote_EtudiantInexistant(t *testing.T) {
	r := setupRouter(&mockEtudiantService{}, &mockNoteService{createErr: service.ErrEtudiantNotFound},
		&mockExportService{})

	w := performRequest(r, http.MethodPost, "/api/notes",
		`{"etudiant_id":999,"matiere":"Maths","note":12}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("attendu 404, obtenu %d", w.Code)
	}
}

func TestNoteHandler_CreateNote_Success(t *testing.T) {
	r := setupRouter(&mockEtudiantService{}, &mockNoteService{
		createResult: &dto.NoteResponse{ID: 1, EtudiantID: 1, Matiere: "Maths", Note: 0, Coefficient: 1},
	}, &mockExportService{})

	// note = 0 est une valeur légitime
	w := performRequest(r, http.MethodPost, "/api/notes",
		`{"etudiant_id":1,"matiere":"Maths","note":0}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("attendu 201, obtenu %d", w.Code)
	}
	body := decodeBody(t, w)
	note, ok := body["note"].(map[string]interface{})
	if !ok {
		t.Fatalf("champ note absent: %v", body)
	}
	if note["note"] != 0.0 {
		t.Errorf("attendu note=0, obtenu %v", note["note"])
	}
}

func TestNoteHandler_DeleteNote_NotFound(t *testing.T) {
	r := setupRouter(&mockEtudiantService{}, &mockNoteService{deleteErr: service.ErrNoteNotFound},
		&mockExportService{})

	w := performRequest(r, http.MethodDelete, "/api/notes/42", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("attendu 404, obtenu %d", w.Code)
	}
}

// ── Export ──

func TestExportHandler_ExportEtudiant_IDInvalide(t *testing.T) {
	r := setupRouter(&mockEtudiantService{}, &mockNoteService{}, &mockExportService{})

	w := performRequest(r, http.MethodGet, "/api/export/etudiant/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("attendu 400, obtenu %d", w.Code)
	}
}

func TestExportHandler_ExportEtudiants_Excel(t *testing.T) {
	r := setupRouter(&mockEtudiantService{}, &mockNoteService{}, &mockExportService{
		excelBuf:  bytes.NewBufferString("contenu-xlsx"),
		excelName: "etudiants_2025-09-01.xlsx",
	})

	w := performRequest(r, http.MethodGet, "/api/export/etudiants", "")
	if w.Code != http.StatusOK {
		t.Fatalf("attendu 200, obtenu %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("Content-Type inattendu: %s", ct)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "etudiants_2025-09-01.xlsx") {
		t.Errorf("Content-Disposition inattendu: %s", w.Header().Get("Content-Disposition"))
	}
}
