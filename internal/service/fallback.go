package service

import (
	"fmt"
	"strings"

	"learnsphere_backend/internal/model"
)

// Fallback lessons keep the product usable when the AI provider is down or
// no credential is configured. They must never be empty and always mention
// the learner's profile, so the front-end renders something personal.

func buildLessonFallback(learner *model.Learner, topic string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Welcome %s!\n\n", learner.Username))
	b.WriteString(fmt.Sprintf("This is your personalized lesson on %s.\n\n", topic))
	b.WriteString(fmt.Sprintf("Learning goals: %s\n", learner.LearningGoals))
	b.WriteString(fmt.Sprintf("Experience level: %s\n\n", learner.ExperienceLevel))

	b.WriteString(`1. Learning Objectives
Understand the fundamentals of the topic and how it connects to your goals.

2. Key Concepts
Start with the core vocabulary and the two or three ideas everything else builds on.

3. Worked Examples
Walk through one small example end to end before trying variations.

4. Hands-On Activity
Rebuild the example from scratch, then change one input and predict the result.

5. Knowledge Check
Explain the topic in your own words in three sentences.

Live AI generation is currently unavailable, so this is a starter outline. Configure an OpenAI API key for fully generated lessons.`)

	return b.String()
}

func buildPracticeFallback(learner *model.Learner) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Welcome %s!\n\n", learner.Username))
	b.WriteString("Here are three practice exercises to keep you moving.\n\n")
	b.WriteString(fmt.Sprintf("Learning goals: %s\n", learner.LearningGoals))
	b.WriteString(fmt.Sprintf("Experience level: %s\n\n", learner.ExperienceLevel))

	b.WriteString(`Exercise 1: Write down what you already know about your current topic, then list three things you want to find out.

Exercise 2: Take the smallest example from your last lesson and modify it until it breaks. Note what broke and why.

Exercise 3: Explain the hardest idea you met this week to an imaginary beginner in five sentences.

Live AI generation is currently unavailable, so these are starter exercises. Configure an OpenAI API key for fully generated practice content.`)

	return b.String()
}
