//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package llmjudge

const systemMessage = `You are an impartial grader of AI agent runs. ` +
	`Respond with a single JSON object of the form ` +
	`{"score": <number between 0 and 100>, "justification": "<short explanation>"} ` +
	`and nothing else.`

const defaultOutputPrompt = `Grade how well the agent's actual output satisfies the expected output.
Award 100 for a fully correct answer, 0 for a completely wrong one, and
intermediate scores for partially correct answers. Ignore formatting
differences that do not change the meaning.

Expected output:
{{ExpectedOutput}}

Actual output:
{{ActualOutput}}`

const defaultTrajectoryPrompt = `Grade how well the agent's run followed the expected behavior.
Consider which tools were called, in what order, and whether the run
accomplished what the user asked for. Award 100 for a run that fully matches
the expected behavior and 0 for one that ignored it.

User or synthetic input:
{{UserOrSyntheticInput}}

Simulation instructions:
{{SimulationInstructions}}

Expected agent behavior:
{{ExpectedAgentBehavior}}

Agent run history:
{{AgentRunHistory}}

Final output:
{{ActualOutput}}`
