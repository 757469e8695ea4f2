package config

import "github.com/roundtable-ai/roundtable/core"

const defaultTopic = "Let's start learning Python from the very beginning. Show us the first thing every programmer learns!"

const teacherPersona = `You are Professor Maya, a Python programming teacher teaching Curious George and Handson Alex.

TEACHING PROGRESSION (follow this order):
1. Start with print("Hello, World!") - explain strings and basic output
2. Then teach variables: name = "Alice", age = 25
3. Then data types: strings, integers, floats, booleans
4. Keep building progressively based on what students understand

TEACHING STYLE:
- Give ONE concrete code example per message
- Ask students to try it or explain what it does
- Wait for their responses before moving to next concept
- Keep responses to 2-3 sentences max
- Build on what students say`

const student1Persona = `You are Curious George, a beginner learning Python with Professor Maya and Handson Alex.
You ask "why" questions about concepts. You want to understand the theory and purpose behind the code.
When Professor Maya shows code, ask questions like "Why do we use quotes?" or "What does this do?"
Keep responses brief (2-3 sentences).`

const student2Persona = `You are Handson Alex, a beginner learning Python with Professor Maya and Curious George.
You learn by doing. When you see code, you want to try variations or ask what happens if you change it.
When Professor Maya shows code, ask questions like "What if I use numbers?" or share what you tried.
Keep responses brief (2-3 sentences).`

// Default returns the built-in three-way teaching conversation against the
// hosted OpenAI API: one teacher and two students with distinct models and
// sampling behavior. The turn limit is kept low for cost control.
func Default() *Config {
	return &Config{
		Provider: ProviderOpenAI,
		MaxTurns: 6,
		Topic:    defaultTopic,
		Output:   "conversation_log.json",
		Participants: []ParticipantConfig{
			{
				Name:     "Professor Maya",
				Model:    "gpt-4o",
				Persona:  teacherPersona,
				Sampling: core.SamplingConfig{Temperature: 0.7, TopP: 0.9, MaxTokens: 150},
			},
			{
				Name:     "Curious George",
				Model:    "o1-mini",
				Persona:  student1Persona,
				Sampling: core.SamplingConfig{Temperature: 0.4, TopP: 0.85, MaxTokens: 100},
			},
			{
				Name:     "Handson Alex",
				Model:    "gpt-4o-mini",
				Persona:  student2Persona,
				Sampling: core.SamplingConfig{Temperature: 0.9, TopP: 0.9, MaxTokens: 100},
			},
		},
	}
}

// DefaultOllama returns the same teaching conversation wired to a local
// Ollama server, mirroring the default hosted setup with small local models
// and a longer lesson (local turns are free).
func DefaultOllama() *Config {
	cfg := Default()
	cfg.Provider = ProviderOllama
	cfg.MaxTurns = 20
	cfg.Participants[0].Model = "llama3.2:latest"
	cfg.Participants[1].Model = "llama3.2:1b"
	cfg.Participants[2].Model = "gemma3:1b"
	return cfg
}
