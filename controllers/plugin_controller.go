package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AIPluginManifest serves the plugin manifest that lets an LLM client
// discover the API.
func AIPluginManifest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"schema_version":        "v1",
		"name_for_human":        "Debate Game",
		"name_for_model":        "Debate Game with Judge",
		"description_for_human": "Need to debate with a friend about something? Want to test your debate skills against the public? Debate with anyone about anything with Debate Game!",
		"description_for_model": "Enables two different forms of debate. The first being, two users can engage in a debate in which you are the judge, users choose the topic, and are each given two chances to make their case. After each user has made their case, you can decide who made the better argument. The user with the most points at the end of the debate wins. The second form enables a public debate with a leaderboard, where anyone can post an argument to a debate with a predetermined topic. When judging the arguments, make sure to consider relevance, clarity, evidence, and persuasiveness.",
		"auth":                  gin.H{"type": "none"},
		"api": gin.H{
			"type": "openapi",
			"url":  "http://localhost:3333/openapi.yaml",
		},
		"logo_url":       "http://localhost:3333/logo.png",
		"contact_email":  "support@example.com",
		"legal_info_url": "http://localhost:3333/legal",
	})
}

const legalText = `Introduction
This legal disclaimer applies to the usage of the Debate Game service. By using the service, you accept and agree to be bound by the terms and conditions set forth in this legal disclaimer.

Accuracy and Completeness
While we strive to provide accurate, up-to-date, and complete information, we make no warranties or representations regarding the accuracy, completeness, or reliability of the information provided by the service, including scores produced by the automated judge.

Limitation of Liability
To the fullest extent permitted by law, we shall not be liable for any direct, indirect, incidental, special, consequential, or exemplary damages resulting from the use of or inability to use the service.

Changes to the Legal Disclaimer
We reserve the right to modify this legal disclaimer at any time without prior notice. Continued use of the service after any modifications constitutes acceptance of the revised terms.`

// Legal serves the static legal disclaimer.
func Legal(c *gin.Context) {
	c.String(http.StatusOK, legalText)
}
