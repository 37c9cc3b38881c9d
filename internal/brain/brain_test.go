package brain

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jarvis-assistant/internal/action"
	"jarvis-assistant/internal/intent"
	"jarvis-assistant/internal/model"
	"jarvis-assistant/internal/sanitizer"
	"jarvis-assistant/internal/vocab"
	"jarvis-assistant/pkg/log"
)

type fakeKnowledge struct {
	answer    string
	err       error
	questions []string
	hints     []string
}

func (f *fakeKnowledge) Explain(ctx context.Context, question, hint string) (string, error) {
	f.questions = append(f.questions, question)
	f.hints = append(f.hints, hint)
	return f.answer, f.err
}

type fakeConversational struct {
	fakeKnowledge
	prompts []string
}

func (f *fakeConversational) Converse(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.answer, f.err
}

type recorded struct {
	role     model.Role
	text     string
	language string
	intent   string
	topic    string
	action   model.Action
}

type fakeMemory struct {
	entries []recorded
}

func (m *fakeMemory) AddUserMessage(text, language, intent, topic string) {
	m.entries = append(m.entries, recorded{role: model.RoleUser, text: text, language: language, intent: intent, topic: topic})
}

func (m *fakeMemory) AddAssistantMessage(text string, a model.Action, intent string) {
	m.entries = append(m.entries, recorded{role: model.RoleAssistant, text: text, action: a, intent: intent})
}

func (m *fakeMemory) LastTopic() string {
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].role == model.RoleUser {
			return m.entries[i].topic
		}
	}
	return ""
}

func (m *fakeMemory) LastIntent() string {
	if len(m.entries) == 0 {
		return ""
	}
	return m.entries[len(m.entries)-1].intent
}

// firstPicker always picks the first variant.
type firstPicker struct{}

func (firstPicker) Intn(int) int { return 0 }

type stubDetector struct{ score intent.Score }

func (s stubDetector) Classify(context.Context, string) intent.Score { return s.score }

type stubResolver struct{ decision model.TaskDecision }

func (s stubResolver) Resolve(context.Context, string) model.TaskDecision { return s.decision }

func newTestRouter(t *testing.T, k Knowledge, mem *fakeMemory) *Router {
	t.Helper()
	l := log.NewNop()
	store := vocab.NewStore(nil)
	r, err := New(Deps{
		Sanitizer: sanitizer.New(l, 0),
		Detector:  intent.New(store, l),
		Resolver:  action.New(store, l),
		Knowledge: k,
		Memory:    mem,
		Vocab:     store,
		Picker:    firstPicker{},
		Logger:    l,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestProcess(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantIntent     model.DecisionIntent
		wantCategory   model.IntentCategory
		wantAction     model.Action
		wantResponse   string
		wantConfidence float64
		wantEntity     string
		wantEntityVal  string
	}{
		{
			name:           "open app",
			text:           "open chrome",
			wantIntent:     model.DecisionTask,
			wantCategory:   model.IntentAction,
			wantAction:     model.ActionOpenApp,
			wantResponse:   "Opening Chrome.",
			wantConfidence: 0.6,
			wantEntity:     model.EntityAppName,
			wantEntityVal:  "chrome",
		},
		{
			name:           "open youtube plays placeholder",
			text:           "open youtube",
			wantIntent:     model.DecisionTask,
			wantCategory:   model.IntentAction,
			wantAction:     model.ActionPlayYouTube,
			wantResponse:   "Playing that now.",
			wantConfidence: 0.6,
			wantEntity:     model.EntityVideoName,
			wantEntityVal:  "that",
		},
		{
			name:           "question goes to knowledge",
			text:           "what is gravity?",
			wantIntent:     model.DecisionInformation,
			wantCategory:   model.IntentInformation,
			wantResponse:   "answer",
			wantConfidence: 0.58,
		},
		{
			name:           "greeting",
			text:           "hello",
			wantIntent:     model.DecisionConversation,
			wantCategory:   model.IntentConversation,
			wantResponse:   "answer",
			wantConfidence: 0.5,
		},
		{
			name:           "exit",
			text:           "exit",
			wantIntent:     model.DecisionTask,
			wantCategory:   model.IntentExit,
			wantAction:     model.ActionExit,
			wantResponse:   ResponseExit,
			wantConfidence: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, &fakeKnowledge{answer: "answer"}, &fakeMemory{})

			got := r.Process(context.Background(), tt.text, "en")

			if got.Intent != tt.wantIntent {
				t.Errorf("Intent = %q, want %q", got.Intent, tt.wantIntent)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", got.Category, tt.wantCategory)
			}
			if got.Action != tt.wantAction {
				t.Errorf("Action = %q, want %q", got.Action, tt.wantAction)
			}
			if got.Response != tt.wantResponse {
				t.Errorf("Response = %q, want %q", got.Response, tt.wantResponse)
			}
			if diff := got.Confidence - tt.wantConfidence; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
			if tt.wantEntity != "" {
				if v, _ := got.Entities.Get(tt.wantEntity); v != tt.wantEntityVal {
					t.Errorf("entity %s = %q, want %q", tt.wantEntity, v, tt.wantEntityVal)
				}
			}
			if got.Entities == nil {
				t.Error("Entities should never be nil")
			}
		})
	}
}

func TestProcess_Blocked(t *testing.T) {
	k := &fakeKnowledge{answer: "answer"}
	mem := &fakeMemory{}
	r := newTestRouter(t, k, mem)

	got := r.Process(context.Background(), "rm -rf /", "en")

	if got.Intent != model.DecisionBlocked {
		t.Errorf("Intent = %q, want BLOCKED", got.Intent)
	}
	if got.Response != ResponseBlocked || got.Confidence != 1.0 || !got.Action.IsNone() {
		t.Errorf("blocked result = %+v", got)
	}
	if got.Warning != sanitizer.WarningDangerous {
		t.Errorf("Warning = %q", got.Warning)
	}
	if len(mem.entries) != 0 {
		t.Errorf("blocked input recorded to memory: %+v", mem.entries)
	}
	if len(k.questions) != 0 {
		t.Error("knowledge consulted for blocked input")
	}
}

func TestProcess_RecordsExchange(t *testing.T) {
	mem := &fakeMemory{}
	r := newTestRouter(t, nil, mem)

	r.Process(context.Background(), "  open   chrome ", "hi")

	if len(mem.entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(mem.entries))
	}
	user, assistant := mem.entries[0], mem.entries[1]
	if user.text != "open chrome" || user.language != "hi" || user.intent != "ACTION" || user.topic != intent.TypeSystemControl {
		t.Errorf("user entry = %+v", user)
	}
	if assistant.text != "Opening Chrome." || assistant.action != model.ActionOpenApp || assistant.intent != "task" {
		t.Errorf("assistant entry = %+v", assistant)
	}
}

func TestProcess_DefaultLanguage(t *testing.T) {
	mem := &fakeMemory{}
	r := newTestRouter(t, nil, mem)

	r.Process(context.Background(), "exit", "")

	if mem.entries[0].language != DefaultLanguage {
		t.Errorf("language = %q, want %q", mem.entries[0].language, DefaultLanguage)
	}
}

func TestProcess_ConfiguredDefaultLanguage(t *testing.T) {
	l := log.NewNop()
	store := vocab.NewStore(nil)
	mem := &fakeMemory{}
	r, err := New(Deps{
		Sanitizer:       sanitizer.New(l, 0),
		Detector:        intent.New(store, l),
		Resolver:        action.New(store, l),
		Memory:          mem,
		Picker:          firstPicker{},
		DefaultLanguage: "hi",
	})
	if err != nil {
		t.Fatal(err)
	}

	r.Process(context.Background(), "exit", "")
	r.Process(context.Background(), "exit", "en")

	if mem.entries[0].language != "hi" {
		t.Errorf("defaulted language = %q, want hi", mem.entries[0].language)
	}
	if mem.entries[2].language != "en" {
		t.Errorf("explicit language = %q, want en", mem.entries[2].language)
	}
}

func TestProcess_ActionNeverCallsKnowledge(t *testing.T) {
	k := &fakeKnowledge{answer: "answer"}
	r := newTestRouter(t, k, &fakeMemory{})

	for _, text := range []string{"open chrome", "play despacito", "search for golang tutorials"} {
		if got := r.Process(context.Background(), text, "en"); got.Intent != model.DecisionTask {
			t.Errorf("%q routed to %q", text, got.Intent)
		}
	}
	if len(k.questions) != 0 {
		t.Errorf("knowledge called for actions: %v", k.questions)
	}
}

func TestProcess_InformationUsesLastTopicHint(t *testing.T) {
	k := &fakeKnowledge{answer: "Gravity attracts."}
	r := newTestRouter(t, k, &fakeMemory{})

	got := r.Process(context.Background(), "what is gravity?", "en")

	if got.Response != "Gravity attracts." {
		t.Errorf("Response = %q", got.Response)
	}
	if len(k.questions) != 1 || k.questions[0] != "what is gravity?" {
		t.Fatalf("questions = %v", k.questions)
	}
	if k.hints[0] != intent.TypeKnowledgeRequest {
		t.Errorf("hint = %q, want %q", k.hints[0], intent.TypeKnowledgeRequest)
	}
}

func TestProcess_KnowledgeFailure(t *testing.T) {
	tests := []struct {
		name string
		k    Knowledge
		text string
		want string
	}{
		{"information error", &fakeKnowledge{err: errors.New("boom")}, "what is gravity?", ResponseNoAnswer},
		{"information without backend", nil, "what is gravity?", ResponseNoAnswer},
		{"greeting error", &fakeKnowledge{err: errors.New("boom")}, "hello", "Hello! What can I do for you?"},
		{"greeting without backend", nil, "namaste kaise ho", "Hello! What can I do for you?"},
		{"thanks error", &fakeConversational{fakeKnowledge: fakeKnowledge{err: errors.New("boom")}}, "thanks", "You're welcome!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, tt.k, &fakeMemory{})
			got := r.Process(context.Background(), tt.text, "en")
			if got.Response != tt.want {
				t.Errorf("Response = %q, want %q", got.Response, tt.want)
			}
			if strings.Contains(got.Response, "boom") {
				t.Error("raw error leaked into response")
			}
		})
	}
}

func TestProcess_ConversationPrompt(t *testing.T) {
	t.Run("explain backend", func(t *testing.T) {
		k := &fakeKnowledge{answer: "Hi!"}
		r := newTestRouter(t, k, &fakeMemory{})
		r.Process(context.Background(), "hello", "en")

		if len(k.questions) != 1 || !strings.HasPrefix(k.questions[0], "User said: hello\n\n") {
			t.Errorf("questions = %q", k.questions)
		}
		if k.hints[0] != "" {
			t.Errorf("conversation passed a hint: %q", k.hints[0])
		}
	})

	t.Run("conversational backend", func(t *testing.T) {
		k := &fakeConversational{fakeKnowledge: fakeKnowledge{answer: "Hi!"}}
		r := newTestRouter(t, k, &fakeMemory{})
		got := r.Process(context.Background(), "hello", "en")

		if got.Response != "Hi!" {
			t.Errorf("Response = %q", got.Response)
		}
		if len(k.prompts) != 1 || len(k.questions) != 0 {
			t.Errorf("prompts = %d, questions = %d", len(k.prompts), len(k.questions))
		}
	})
}

func TestProcess_ResolutionMiss(t *testing.T) {
	l := log.NewNop()
	r, err := New(Deps{
		Sanitizer: sanitizer.New(l, 0),
		Detector: stubDetector{score: intent.Score{
			Category:   model.IntentAction,
			Confidence: 0.7,
			Details:    map[string]string{intent.DetailType: intent.TypeSystemControl},
		}},
		Resolver: stubResolver{decision: model.TaskDecision{
			Intent:     model.DecisionConversation,
			Entities:   model.Entities{},
			Confidence: 0.5,
		}},
		Memory: &fakeMemory{},
		Picker: firstPicker{},
	})
	if err != nil {
		t.Fatal(err)
	}

	got := r.Process(context.Background(), "do the thing", "en")

	if got.Intent != model.DecisionTask || !got.Action.IsNone() {
		t.Errorf("result = %+v", got)
	}
	if got.Response != "Done." || got.Confidence != 0.7 {
		t.Errorf("Response = %q, Confidence = %v", got.Response, got.Confidence)
	}
}

func TestProcess_UnknownCategory(t *testing.T) {
	l := log.NewNop()
	r, err := New(Deps{
		Sanitizer: sanitizer.New(l, 0),
		Detector:  stubDetector{score: intent.Score{Category: "UNKNOWN"}},
		Resolver:  stubResolver{},
		Memory:    &fakeMemory{},
	})
	if err != nil {
		t.Fatal(err)
	}

	got := r.Process(context.Background(), "anything", "en")

	if got.Intent != model.DecisionConversation || got.Response != ResponseFallback || got.Confidence != ConfidenceFallback {
		t.Errorf("fallback result = %+v", got)
	}
}

func TestProcess_TruncationWarning(t *testing.T) {
	r := newTestRouter(t, &fakeKnowledge{answer: "ok"}, &fakeMemory{})

	got := r.Process(context.Background(), strings.Repeat("tell ", 300), "en")

	if got.Intent == model.DecisionBlocked {
		t.Fatal("long input blocked")
	}
	if got.Warning != "Input truncated to 1000 characters" {
		t.Errorf("Warning = %q", got.Warning)
	}
}

func TestAcknowledge(t *testing.T) {
	r := newTestRouter(t, nil, &fakeMemory{})

	tests := []struct {
		name     string
		decision model.TaskDecision
		want     string
	}{
		{
			name:     "open app title cased",
			decision: model.NewTaskDecision(model.ActionOpenApp, "", 0.93, model.Entities{model.EntityAppName: model.StrPtr("file explorer")}),
			want:     "Opening File Explorer.",
		},
		{
			name:     "search",
			decision: model.NewTaskDecision(model.ActionSearch, "", 0.92, model.Entities{model.EntitySearchTerms: model.StrPtr("golang")}),
			want:     "Searching for golang.",
		},
		{
			name: "message with contact and text",
			decision: model.NewTaskDecision(model.ActionSendMessage, "", 0.88, model.Entities{
				model.EntityContact: model.StrPtr("john"),
				model.EntityMessage: model.StrPtr("i'm late"),
			}),
			want: "Sending message to john.",
		},
		{
			name: "message with contact only",
			decision: model.NewTaskDecision(model.ActionSendMessage, "", 0.88, model.Entities{
				model.EntityContact: model.StrPtr("john"),
				model.EntityMessage: nil,
			}),
			want: "Opening chat with john.",
		},
		{
			name:     "message without entities",
			decision: model.NewTaskDecision(model.ActionSendMessage, "", 0.88, model.Entities{model.EntityContact: nil, model.EntityMessage: nil}),
			want:     "Opening WhatsApp.",
		},
		{"email", model.NewTaskDecision(model.ActionSendEmail, "", 0.85, nil), "Opening Gmail for you."},
		{"food", model.NewTaskDecision(model.ActionOrderFood, "", 0.82, nil), "Opening food delivery app."},
		{"time is left to the executor", model.NewTaskDecision(model.ActionTimeDate, "", 1.0, nil), ""},
		{"exit", model.NewTaskDecision(model.ActionExit, "", 1.0, nil), "Goodbye!"},
		{"weather uses generic reply", model.NewTaskDecision(model.ActionGetWeather, "", 0.9, nil), "Done."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.acknowledge(tt.decision); got != tt.want {
				t.Errorf("acknowledge() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCannedReply(t *testing.T) {
	r := newTestRouter(t, nil, &fakeMemory{})

	tests := []struct {
		text string
		want string
	}{
		{"hey there", "Hello! What can I do for you?"},
		{"How are you?", "I'm doing great! What about you?"},
		{"thanks a lot", "You're welcome!"},
		{"who are you", "I'm JARVIS, your AI assistant. I can control your computer, answer questions, and help with tasks."},
		{"tell me your name", "I'm JARVIS."},
		{"what can you do", "I can open apps, search the web, play music on YouTube, send messages, and answer your questions."},
		{"this is nice", "I'm here. What would you like me to do?"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := r.cannedReply(tt.text); got != tt.want {
				t.Errorf("cannedReply(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestNew_MissingDeps(t *testing.T) {
	l := log.NewNop()
	full := Deps{
		Sanitizer: sanitizer.New(l, 0),
		Detector:  stubDetector{},
		Resolver:  stubResolver{},
		Memory:    &fakeMemory{},
	}

	tests := []struct {
		name    string
		mutate  func(d *Deps)
		wantErr error
	}{
		{"sanitizer", func(d *Deps) { d.Sanitizer = nil }, ErrNilSanitizer},
		{"detector", func(d *Deps) { d.Detector = nil }, ErrNilDetector},
		{"resolver", func(d *Deps) { d.Resolver = nil }, ErrNilResolver},
		{"memory", func(d *Deps) { d.Memory = nil }, ErrNilMemory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := full
			tt.mutate(&d)
			if _, err := New(d); !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
