package service

import (
	"fmt"
	"strings"

	"learnsphere_backend/internal/model"
)

const tutorSystemPrompt = `You are a helpful AI tutor.`

func buildLessonPrompt(learner *model.Learner, topic string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Create a personalized lesson for %s with the following profile:\n", learner.Username))
	b.WriteString(fmt.Sprintf("- Learning goals: %s\n", learner.LearningGoals))
	b.WriteString(fmt.Sprintf("- Experience level: %s\n", learner.ExperienceLevel))
	b.WriteString(fmt.Sprintf("\nTopic: %s\n", topic))

	b.WriteString(`
The lesson must be broken into the following sections:
1. Learning Objectives
2. Key Concepts (explained simply)
3. Worked Examples (with real code where relevant)
4. Hands-On Activity
5. Knowledge Check (with answer key)

Keep the lesson engaging and matched to the learner's experience level. Assume minimal prior setup and spell out every practical step.`)

	return b.String()
}

func buildPracticePrompt(learner *model.Learner) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Generate personalized practice content for %s:\n", learner.Username))
	b.WriteString(fmt.Sprintf("- Learning goals: %s\n", learner.LearningGoals))
	b.WriteString(fmt.Sprintf("- Experience level: %s\n", learner.ExperienceLevel))

	b.WriteString(`
Create 3 practice exercises with worked solutions that match the learner's goals and level. Order them from easiest to hardest and explain what each one trains.`)

	return b.String()
}
