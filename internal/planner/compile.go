package planner

// Compile turns a raw goal into a fully annotated plan: classify the goal,
// expand every work area into an epic, then rate and estimate every node
// bottom-up. Total over all inputs; an empty goal compiles to a single
// implementation epic.
func Compile(goal string, opts Options) *Plan {
	analysis := AnalyzeGoal(goal)
	plan := &Plan{Goal: goal, Analysis: analysis}
	for _, area := range analysis.WorkAreas {
		epic := GenerateEpicForWorkArea(area, goal, analysis, opts)
		annotateEpic(&epic)
		plan.Epics = append(plan.Epics, epic)
	}
	return plan
}

// annotateEpic assigns difficulty and estimated time to every node under an
// epic. Children are annotated first: the parent's rating reads its child
// count, and nothing mutates a node once its annotation is set.
func annotateEpic(e *Epic) {
	for i := range e.Stories {
		s := &e.Stories[i]
		for j := range s.Subtasks {
			st := &s.Subtasks[j]
			st.Difficulty = CalculateDifficulty(st.Summary, st.Description, 0)
			st.EstimatedTime = CalculateEstimatedTime(st.Difficulty, KindSubtask, st.Summary, st.Description, 0)
		}
		s.Difficulty = CalculateDifficulty(s.Summary, s.Description, len(s.Subtasks))
		s.EstimatedTime = CalculateEstimatedTime(s.Difficulty, KindStory, s.Summary, s.Description, len(s.Subtasks))
	}
	e.Difficulty = CalculateDifficulty(e.Summary, e.Description, len(e.Stories))
	e.EstimatedTime = CalculateEstimatedTime(e.Difficulty, KindEpic, e.Summary, e.Description, len(e.Stories))
}
