package drafts

import (
	"fmt"
	"strings"
)

// Prompts are Florida juvenile dependency specific. The model output is a
// starting point for a pro se parent, not legal advice, and every prompt says
// so.
const promptPreamble = "You are assisting a self-represented parent in a Florida juvenile dependency (Chapter 39) case. " +
	"Write in plain language a layperson can use in court. " +
	"Do not invent facts. Close with a reminder that this is not legal advice."

func strategyPrompt(issue, facts string) string {
	var b strings.Builder
	b.WriteString(promptPreamble)
	b.WriteString("\n\nDraft a case strategy outline for the following issue:\n")
	b.WriteString(issue)
	if strings.TrimSpace(facts) != "" {
		b.WriteString("\n\nRelevant facts provided by the parent:\n")
		b.WriteString(facts)
	}
	b.WriteString("\n\nInclude: the legal standard, what evidence supports the parent's position, and concrete next steps.")
	return b.String()
}

func objectionPrompt(objection, context string) string {
	var b strings.Builder
	b.WriteString(promptPreamble)
	b.WriteString("\n\nOpposing counsel raised the following objection:\n")
	b.WriteString(objection)
	if strings.TrimSpace(context) != "" {
		b.WriteString("\n\nContext from the hearing:\n")
		b.WriteString(context)
	}
	b.WriteString("\n\nDraft a concise spoken response the parent can read to the judge, citing the applicable Florida evidence rule when one fits.")
	return b.String()
}

func predicatePrompt(fileName, text string) string {
	return fmt.Sprintf("%s\n\nThe parent wants to move the document %q into evidence. Its extracted text follows:\n\n%s\n\nList the evidentiary predicate questions needed to authenticate and admit this document under the Florida Evidence Code, then note any hearsay exceptions that may apply.",
		promptPreamble, fileName, text)
}
