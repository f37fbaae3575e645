package tags

import "fmt"

func getSearchTagsPrompt(userPrompt string) string {
	return fmt.Sprintf(`
The user gave this mood or plan request:
"%s"

Your task:
Return ONLY a JSON array of 5 concise search tags a places search API can use to find businesses that one would be interested in based on the user's mood or plan request.
Example: ["romantic restaurant", "scenic park", "cozy cafe", "art museum", "wine bar"]

Return EXACT output format:
["tag1", "tag2", "tag3", "tag4", "tag5"]
`, userPrompt)
}
