package catalog

import (
	"lingua_quest_backend/internal/assessment"
)

// Default builds the game's static content. The dialogue script follows the
// village-tour storyline; listening items carry the expected sentence for
// similarity scoring.
func Default() *Catalog {
	return &Catalog{
		QuestionWeights: map[assessment.QuestionType]float64{
			assessment.TypeIntroduction:      0.8,
			assessment.TypeDialogue:          1.0,
			assessment.TypeListening:         1.2,
			assessment.TypeWriting:           1.2,
			assessment.TypeSocialInteraction: 1.0,
			assessment.TypePhase2Task:        1.0,
		},

		Phase1Questions: []assessment.Question{
			{
				ID:       "q1_intro",
				Type:     assessment.TypeIntroduction,
				Prompt:   "Welcome to Sidi Bou Said! I'm Amira, your guide. Tell me a little about yourself.",
				Skill:    "speaking",
				XPReward: 10,
			},
			{
				ID:       "q2_daily",
				Type:     assessment.TypeDialogue,
				Prompt:   "What does a usual day look like for you back home?",
				Skill:    "speaking",
				XPReward: 10,
			},
			{
				ID:       "q3_listen_market",
				Type:     assessment.TypeListening,
				Prompt:   "Listen carefully and repeat what the merchant says.",
				Expected: "The spice market opens early on Friday mornings",
				Skill:    "listening",
				XPReward: 15,
			},
			{
				ID:       "q4_food",
				Type:     assessment.TypeDialogue,
				Prompt:   "We're stopping for lunch. Describe your favourite meal and why you like it.",
				Skill:    "speaking",
				XPReward: 10,
			},
			{
				ID:       "q5_listen_cafe",
				Type:     assessment.TypeListening,
				Prompt:   "Repeat the waiter's sentence exactly as you hear it.",
				Expected: "Would you prefer mint tea or strong black coffee",
				Skill:    "listening",
				XPReward: 15,
			},
			{
				ID:       "q6_opinion",
				Type:     assessment.TypeDialogue,
				Prompt:   "Some people say travel is the best teacher. Do you agree? Why or why not?",
				Skill:    "speaking",
				XPReward: 15,
			},
			{
				ID:       "q7_social",
				Type:     assessment.TypeSocialInteraction,
				Prompt:   "A local family invites you to dinner. How do you politely accept and what do you ask them?",
				Skill:    "speaking",
				XPReward: 15,
			},
			{
				ID:       "q8_writing",
				Type:     assessment.TypeWriting,
				Prompt:   "Write a short postcard to a friend describing your day in the village.",
				Skill:    "writing",
				XPReward: 20,
			},
			{
				ID:       "q9_farewell",
				Type:     assessment.TypeDialogue,
				Prompt:   "Before you go — what was the most memorable part of the tour, and what would you do differently next time?",
				Skill:    "speaking",
				XPReward: 15,
			},
		},

		Phase2Steps: []Step{
			{
				ID:    "step_1",
				Title: "Plan the route",
				Items: []ActionItem{
					{ID: "s1_i1", Prompt: "Suggest two places your group should visit first and explain your choice.", XPReward: 10},
					{ID: "s1_i2", Prompt: "A teammate prefers the beach over the museum. Propose a compromise.", XPReward: 10},
					{ID: "s1_i3", Prompt: "Write a short message to the group summarising the agreed route.", XPReward: 10},
					{ID: "s1_i4", Prompt: "The bus is late. Suggest how the group should adapt the plan.", XPReward: 10},
					{ID: "s1_i5", Prompt: "Ask a local resident for directions to your first stop.", XPReward: 10},
				},
			},
			{
				ID:    "step_2",
				Title: "Organize the budget",
				Items: []ActionItem{
					{ID: "s2_i1", Prompt: "The group has 200 dinars. Propose how to split it across food, transport and tickets.", XPReward: 10},
					{ID: "s2_i2", Prompt: "A teammate overspent on souvenirs. How do you raise it without conflict?", XPReward: 10},
					{ID: "s2_i3", Prompt: "Negotiate a group discount with the museum clerk.", XPReward: 10},
					{ID: "s2_i4", Prompt: "Summarise the final budget for the group in two or three sentences.", XPReward: 10},
					{ID: "s2_i5", Prompt: "Explain to a new member why the budget matters for the trip.", XPReward: 10},
				},
			},
			{
				ID:    "step_3",
				Title: "Host the cultural evening",
				Items: []ActionItem{
					{ID: "s3_i1", Prompt: "Invite your hosts to share a Tunisian tradition and react to it.", XPReward: 10},
					{ID: "s3_i2", Prompt: "Describe a tradition from your own country to the group.", XPReward: 10},
					{ID: "s3_i3", Prompt: "A misunderstanding arises about dinner customs. Resolve it politely.", XPReward: 10},
					{ID: "s3_i4", Prompt: "Propose a group activity that mixes both cultures.", XPReward: 10},
					{ID: "s3_i5", Prompt: "Thank the hosts on behalf of the whole group.", XPReward: 10},
				},
			},
			{
				ID:    "final_writing",
				Title: "Trip report",
				Items: []ActionItem{
					{ID: "fw_i1", Prompt: "Write the opening paragraph of the group's trip report: where you went and with whom.", XPReward: 15},
					{ID: "fw_i2", Prompt: "Describe one problem the group faced and how you solved it together.", XPReward: 15},
					{ID: "fw_i3", Prompt: "Write the closing paragraph: what the group learned about working together.", XPReward: 15},
					{ID: "fw_i4", Prompt: "Add a recommendation for the next group of visitors.", XPReward: 15},
					{ID: "fw_i5", Prompt: "Give the report a title and a one-sentence summary.", XPReward: 15},
				},
			},
		},

		Remedial: buildRemedial(),

		Achievements: []AchievementDef{
			{Code: assessment.AchQuickThinker, Name: "Quick Thinker", Icon: "bolt", XP: 25},
			{Code: assessment.AchConsistentPerformer, Name: "Consistent Performer", Icon: "target", XP: 30},
			{Code: assessment.AchVocabularyMaster, Name: "Vocabulary Master", Icon: "book", XP: 40},
			{Code: assessment.AchGrammarExpert, Name: "Grammar Expert", Icon: "pen", XP: 40},
			{Code: assessment.AchCommunicator, Name: "Communicator", Icon: "chat", XP: 35},
		},

		LevelInfo: map[assessment.Level]string{
			assessment.LevelA1: "Can understand and use familiar everyday expressions and very basic phrases.",
			assessment.LevelA2: "Can communicate in simple routine tasks on familiar topics.",
			assessment.LevelB1: "Can deal with most situations likely to arise while travelling.",
			assessment.LevelB2: "Can interact with a degree of fluency that makes regular interaction possible.",
			assessment.LevelC1: "Can use language flexibly and effectively for social and professional purposes.",
		},

		RubricWeights: map[assessment.QuestionType]map[string]float64{
			assessment.TypeIntroduction:      {"fluency": 0.4, "vocabulary": 0.3, "grammar": 0.3},
			assessment.TypeDialogue:          {"fluency": 0.3, "vocabulary": 0.3, "grammar": 0.2, "comprehension": 0.2},
			assessment.TypeWriting:           {"grammar": 0.35, "vocabulary": 0.3, "spelling": 0.2, "fluency": 0.15},
			assessment.TypeSocialInteraction: {"fluency": 0.35, "comprehension": 0.35, "vocabulary": 0.3},
			assessment.TypePhase2Task:        {"comprehension": 0.3, "vocabulary": 0.25, "grammar": 0.25, "fluency": 0.2},
		},

		WorkedExamples: map[assessment.Level]string{
			assessment.LevelA1: "I like beach. Is nice. I go with friend.",
			assessment.LevelA2: "I usually visit the beach with my friends because it is relaxing and cheap.",
			assessment.LevelB1: "Although we had planned to visit the museum, we decided that the beach suited everyone better, so we changed the route.",
			assessment.LevelB2: "Having weighed both options, I suggested a compromise: the museum in the morning, when it is quiet, and the beach in the afternoon.",
			assessment.LevelC1: "While I appreciated my teammate's enthusiasm for the coast, I felt obliged to point out, as diplomatically as I could, that our budget and schedule argued for a more balanced itinerary.",
		},
	}
}

func buildRemedial() map[RemedialKey][]Activity {
	remedial := make(map[RemedialKey][]Activity)
	steps := []string{"step_1", "step_2", "step_3", "final_writing"}
	for _, stepID := range steps {
		remedial[RemedialKey{StepID: stepID, Level: assessment.LevelA1}] = []Activity{
			{ID: stepID + "_a1_match", Type: "matching", Title: "Match everyday words to pictures", SuccessThreshold: 6, MaxScore: 8},
			{ID: stepID + "_a1_gap", Type: "fill_gap", Title: "Complete simple sentences", SuccessThreshold: 4, MaxScore: 6},
			{ID: stepID + "_a1_dialogue", Type: "dialogue", Title: "Order phrases into a short dialogue", SuccessThreshold: 3, MaxScore: 5},
		}
		remedial[RemedialKey{StepID: stepID, Level: assessment.LevelA2}] = []Activity{
			{ID: stepID + "_a2_match", Type: "matching", Title: "Match phrases to situations", SuccessThreshold: 5, MaxScore: 8},
			{ID: stepID + "_a2_gap", Type: "fill_gap", Title: "Choose the right connector", SuccessThreshold: 5, MaxScore: 8},
			{ID: stepID + "_a2_dialogue", Type: "dialogue", Title: "Complete a planning conversation", SuccessThreshold: 4, MaxScore: 6},
		}
		remedial[RemedialKey{StepID: stepID, Level: assessment.LevelB1}] = []Activity{
			{ID: stepID + "_b1_gap", Type: "fill_gap", Title: "Rewrite sentences with conditionals", SuccessThreshold: 4, MaxScore: 6},
			{ID: stepID + "_b1_dialogue", Type: "dialogue", Title: "Negotiate a disagreement politely", SuccessThreshold: 4, MaxScore: 6},
		}
	}
	return remedial
}
