package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listTopicsTool defines the list_topics MCP tool.
var listTopicsTool = mcp.NewTool("list_topics",
	mcp.WithDescription("List the configured interview topics with their question bank paths."),
)

// sampleQuestionsTool defines the sample_questions MCP tool.
var sampleQuestionsTool = mcp.NewTool("sample_questions",
	mcp.WithDescription("Draw a random set of interview questions, with solutions, from one topic's bank."),
	mcp.WithString("topic",
		mcp.Required(),
		mcp.Description("Topic id, as returned by list_topics"),
	),
	mcp.WithNumber("count",
		mcp.Description("Number of questions to draw (default from config)"),
	),
)
