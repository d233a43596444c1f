package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"lingua_quest_backend/internal/assessment"
	"lingua_quest_backend/internal/config"
	"lingua_quest_backend/pkg/logger"
	"lingua_quest_backend/pkg/monitoring"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// JudgeService 调用 OpenAI 兼容接口评估自由文本回答,实现 assessment.Judge
type JudgeService struct {
	Cfg    *config.JudgeConfig
	Client *http.Client
}

func NewJudgeService(cfg *config.JudgeConfig) *JudgeService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &JudgeService{
		Cfg: cfg,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Enabled 未配置 base_url 时整个评审层关闭,走本地启发式
func (s *JudgeService) Enabled() bool {
	return s.Cfg.BaseURL != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// judgeOutput 评审返回的结构化JSON
type judgeOutput struct {
	Level         string            `json:"level"`
	Justification string            `json:"justification"`
	SubScores     map[string]string `json:"sub_scores"`
	Strengths     []string          `json:"strengths"`
	Improvements  []string          `json:"improvements"`
}

func (s *JudgeService) Evaluate(ctx context.Context, req assessment.JudgeRequest) (*assessment.Judgment, error) {
	start := time.Now()
	defer func() {
		monitoring.JudgeDuration.Observe(time.Since(start).Seconds())
	}()

	payload := chatRequest{
		Model:       s.Cfg.Model,
		Temperature: 0.2,
		Messages: []chatMessage{
			{Role: "system", Content: buildSystemPrompt(req)},
			{Role: "user", Content: buildUserPrompt(req)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := strings.TrimSuffix(s.Cfg.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.Cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.Cfg.APIKey)
	}

	resp, err := s.Client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("judge returned %d: %s", resp.StatusCode, string(raw))
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, fmt.Errorf("decode judge response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("judge returned no choices")
	}

	return parseJudgment(chat.Choices[0].Message.Content)
}

// parseJudgment 严格解析评审输出;模型偶尔会包一层 markdown 代码栅栏,先剥掉
func parseJudgment(content string) (*assessment.Judgment, error) {
	content = stripCodeFence(content)

	var out judgeOutput
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("judge output is not valid JSON: %w", err)
	}

	level, ok := assessment.ParseLevel(out.Level)
	if !ok {
		return nil, fmt.Errorf("judge returned unusable level %q", out.Level)
	}

	return &assessment.Judgment{
		Level:         level,
		Justification: out.Justification,
		SubScores:     out.SubScores,
		Strengths:     out.Strengths,
		Improvements:  out.Improvements,
	}, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func buildSystemPrompt(req assessment.JudgeRequest) string {
	var b strings.Builder
	b.WriteString("You are a CEFR English examiner. Evaluate the learner's answer and respond with ONLY a JSON object: ")
	b.WriteString(`{"level":"A1|A2|B1|B2|C1","justification":"...","sub_scores":{"vocabulary":"...","grammar":"...","spelling":"...","fluency":"...","comprehension":"..."},"strengths":["..."],"improvements":["..."]}`)
	b.WriteString("\nNever assign a level above C1.")

	if len(req.RubricWeights) > 0 {
		b.WriteString("\nRubric weights for this question type:")
		for criterion, weight := range req.RubricWeights {
			fmt.Fprintf(&b, " %s=%.2f", criterion, weight)
		}
	}
	if len(req.WorkedExamples) > 0 {
		b.WriteString("\nCalibration examples:")
		for _, level := range []assessment.Level{assessment.LevelA1, assessment.LevelA2, assessment.LevelB1, assessment.LevelB2, assessment.LevelC1} {
			if example, ok := req.WorkedExamples[level]; ok {
				fmt.Fprintf(&b, "\n%s: %q", level, example)
			}
		}
	}
	return b.String()
}

func buildUserPrompt(req assessment.JudgeRequest) string {
	return fmt.Sprintf("Question type: %s\nQuestion: %s\nLearner answer: %s",
		req.QuestionType, req.Question, req.Answer)
}

// detectorOutput AI文本检测接口返回
type detectorOutput struct {
	Score float64 `json:"score"`
}

// DetectAIScore 调用检测接口估计回答由AI生成的概率,失败时返回 0 放行
func (s *JudgeService) DetectAIScore(ctx context.Context, text string) float64 {
	if !s.Cfg.DetectorOn || s.Cfg.BaseURL == "" {
		return 0
	}

	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return 0
	}

	url := strings.TrimSuffix(s.Cfg.BaseURL, "/") + "/detect"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.Cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.Cfg.APIKey)
	}

	resp, err := s.Client.Do(httpReq)
	if err != nil {
		logger.Log.Warn("AI detector unreachable", zap.Error(err))
		return 0
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0
	}

	var out detectorOutput
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0
	}
	return out.Score
}
