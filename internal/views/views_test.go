package views

import (
	"strings"
	"testing"

	"github.com/transcall/transcall/internal/api"
)

func TestRecordingsTableEmpty(t *testing.T) {
	out := RecordingsTable(nil, -1)
	if !strings.Contains(out, "Nenhuma gravação encontrada") {
		t.Error("empty table should show the placeholder")
	}
	if !strings.Contains(out, "Título") {
		t.Error("header row missing")
	}
}

func TestRecordingsTableRows(t *testing.T) {
	recordings := []api.Recording{
		{ID: 1, Title: "Chamada cliente", CreatedAt: "2025-03-09T14:30:00Z", FileType: "mp3", Status: "completed"},
		{ID: 2, CreatedAt: "2025-03-10", Status: "processing"},
	}
	out := RecordingsTable(recordings, 0)

	if !strings.Contains(out, "Chamada cliente") {
		t.Error("row title missing")
	}
	if !strings.Contains(out, "09/03/2025 14:30") {
		t.Error("formatted date missing")
	}
	if !strings.Contains(out, "Gravação 2") {
		t.Error("untitled row should get the id fallback")
	}
	if !strings.Contains(out, "Desconhecido") {
		t.Error("missing file type should render Desconhecido")
	}
	if !strings.Contains(out, "Concluído") || !strings.Contains(out, "Processando") {
		t.Error("status labels missing")
	}
	if !strings.Contains(out, "> ") {
		t.Error("selection cursor missing")
	}
}

func TestRecordingActionsGateViewing(t *testing.T) {
	completed := RecordingsTable([]api.Recording{{ID: 1, Status: "completed"}}, -1)
	if !strings.Contains(completed, "ver") {
		t.Error("completed recording should offer ver")
	}

	processing := RecordingsTable([]api.Recording{{ID: 1, Status: "processing"}}, -1)
	if strings.Contains(processing, "ver") {
		t.Error("processing recording should not offer ver")
	}
	if !strings.Contains(processing, "---") {
		t.Error("processing recording should show the disabled marker")
	}
}

func TestTranscriptionsTableEmpty(t *testing.T) {
	out := TranscriptionsTable(nil, -1)
	if !strings.Contains(out, "Nenhuma transcrição encontrada") {
		t.Error("empty table should show the placeholder")
	}
}

func TestTranscriptionsTableRow(t *testing.T) {
	out := TranscriptionsTable([]api.Transcription{{
		ID:             4,
		Title:          "Atendimento",
		CreatedAt:      "2025-02-01T09:00:00Z",
		Duration:       185,
		SentimentScore: 0.5,
		Keywords: []api.Keyword{
			{Text: "fatura", Count: 5},
			{Text: "prazo", Count: 3},
			{Text: "taxa", Count: 2},
			{Text: "quarto", Count: 1},
		},
	}}, -1)

	if !strings.Contains(out, "Atendimento") {
		t.Error("title missing")
	}
	if !strings.Contains(out, "03:05") {
		t.Error("duration missing")
	}
	if !strings.Contains(out, "Positivo") {
		t.Error("sentiment label missing")
	}
	if !strings.Contains(out, "fatura, prazo, taxa") {
		t.Error("top keywords missing")
	}
	if strings.Contains(out, "quarto") {
		t.Error("only the top three keywords should render")
	}
}

func TestTranscriptionDetail(t *testing.T) {
	out := TranscriptionDetail(api.Transcription{
		ID:             9,
		Title:          "Suporte",
		CreatedAt:      "2025-01-15T10:00:00Z",
		Duration:       60,
		Operator:       "Paulo",
		SentimentScore: -0.4,
		Summary:        "Cliente insatisfeito com o prazo.",
		Keywords:       []api.Keyword{{Text: "prazo", Count: 4}},
		Segments: []api.Segment{
			{Speaker: "Operador", StartTime: 0, EndTime: 12.5, Text: "Bom dia", Sentiment: 0.1},
		},
	}, 80)

	if !strings.Contains(out, "Suporte") {
		t.Error("title missing")
	}
	if !strings.Contains(out, "Cliente insatisfeito com o prazo.") {
		t.Error("summary missing")
	}
	if !strings.Contains(out, "Negativo") {
		t.Error("sentiment label missing")
	}
	if !strings.Contains(out, "prazo (4)") {
		t.Error("keyword cloud missing")
	}
	if !strings.Contains(out, "00:00 - 00:12") {
		t.Error("segment time range missing")
	}
	if !strings.Contains(out, "Bom dia") {
		t.Error("segment text missing")
	}
}

func TestTranscriptionDetailEmptySections(t *testing.T) {
	out := TranscriptionDetail(api.Transcription{ID: 1, Title: "Vazia"}, 80)

	if !strings.Contains(out, "Resumo não disponível") {
		t.Error("missing summary placeholder")
	}
	if !strings.Contains(out, "Nenhuma palavra-chave encontrada") {
		t.Error("missing keyword placeholder")
	}
	if !strings.Contains(out, "Nenhum segmento de transcrição disponível") {
		t.Error("missing segment placeholder")
	}
}

func TestDashboardEmpty(t *testing.T) {
	out := Dashboard(api.DashboardStats{}, 100)
	if !strings.Contains(out, "Total de Chamadas") {
		t.Error("stat cards missing")
	}
	if !strings.Contains(out, "Sem dados no período") {
		t.Error("empty chart placeholder missing")
	}
}

func TestDashboardCharts(t *testing.T) {
	out := Dashboard(api.DashboardStats{
		TotalCalls:       12,
		AverageTMA:       125,
		AverageSentiment: 0.4,
		CriticalMoments:  2,
		CallsByDay: []api.DayCount{
			{Date: "2025-03-01", Count: 5},
			{Date: "2025-03-02", Count: 7},
		},
		SentimentDistribution: api.SentimentDistribution{Positive: 6, Neutral: 4, Negative: 2},
		TopKeywords:           []api.Keyword{{Text: "fatura", Count: 9}},
		OperatorsPerformance: []api.OperatorPerformance{
			{Name: "Paulo", Calls: 8, Sentiment: 0.2},
		},
	}, 100)

	if !strings.Contains(out, "02:05") {
		t.Error("average TMA should render as duration")
	}
	if !strings.Contains(out, "Positivo") {
		t.Error("sentiment rows missing")
	}
	if !strings.Contains(out, "fatura") {
		t.Error("keywords chart missing")
	}
	if !strings.Contains(out, "Paulo") {
		t.Error("operators chart missing")
	}
	if !strings.Contains(out, "8 chamadas") {
		t.Error("operator call count missing")
	}
}

func TestUsersTable(t *testing.T) {
	out := UsersTable([]api.User{
		{ID: 1, Name: "Ana", Email: "ana@x.com", Role: "admin", LastLogin: "2025-03-01T08:00:00Z"},
		{ID: 2, Name: "Beto", Email: "beto@x.com", Role: "operator"},
	}, -1)

	if !strings.Contains(out, "Administrador") || !strings.Contains(out, "Operador") {
		t.Error("role labels missing")
	}
	if !strings.Contains(out, "Nunca") {
		t.Error("missing last login should render Nunca")
	}
	if !strings.Contains(out, "01/03/2025") {
		t.Error("last login date missing")
	}
}

func TestUsersTableEmpty(t *testing.T) {
	out := UsersTable(nil, -1)
	if !strings.Contains(out, "Nenhum usuário encontrado") {
		t.Error("empty table should show the placeholder")
	}
}

func TestFourcomStatusLine(t *testing.T) {
	if out := FourcomStatusLine(api.FourcomStatus{Status: "connected"}, true); !strings.Contains(out, "Conectado") {
		t.Errorf("connected line = %q", out)
	}
	if out := FourcomStatusLine(api.FourcomStatus{SimulationMode: true}, true); !strings.Contains(out, "Modo de simulação") {
		t.Errorf("simulation line = %q", out)
	}
	if out := FourcomStatusLine(api.FourcomStatus{}, false); !strings.Contains(out, "Erro de conexão") {
		t.Errorf("error line = %q", out)
	}
}

func TestFourcomTableImportStates(t *testing.T) {
	list := api.FourcomRecordingList{
		Recordings: []api.FourcomRecording{
			{ID: "a", Title: "Chamada A", Date: "2025-03-01", Duration: 65},
			{ID: "b", Title: "Chamada B"},
			{ID: "c", Title: "Chamada C"},
		},
	}
	out := FourcomTable(list, map[string]string{
		"a": ImportRunning,
		"b": ImportDone,
	}, -1)

	if !strings.Contains(out, "Importando...") {
		t.Error("running import state missing")
	}
	if !strings.Contains(out, "Importado") {
		t.Error("done import state missing")
	}
	if !strings.Contains(out, "Importar") {
		t.Error("idle import action missing")
	}
}

func TestFourcomTableSimulationNotice(t *testing.T) {
	out := FourcomTable(api.FourcomRecordingList{Simulation: true}, nil, -1)
	if !strings.Contains(out, "Modo de simulação ativado") {
		t.Error("simulation notice missing")
	}
}

func TestWrapText(t *testing.T) {
	lines := WrapText("uma frase razoavelmente longa para quebrar", 15)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %v", lines)
	}
	for _, l := range lines {
		if len(l) > 15 {
			t.Errorf("line %q exceeds width", l)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("curto", 10); got != "curto" {
		t.Errorf("Truncate = %q", got)
	}
	got := Truncate("um título comprido demais", 10)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Truncate = %q, want ellipsis", got)
	}
}
