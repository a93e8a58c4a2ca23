package handlers

// Swagger annotations for the routes mounted by registerCRUDRoutes. swag only reads
// comments attached to function declarations, so each route gets an empty one here.

// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body domain.Client true "Client to create"
// @Success 201 {object} domain.Client
// @Failure 400 {object} map[string]string "Invalid request"
// @Security BearerAuth
// @Router /clients [post]
func createClientDoc() {}

// @Summary List clients
// @Tags clients
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Rows to skip" default(0)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListResponse[domain.Client]
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /clients [get]
func listClientDoc() {}

// @Summary Get a client
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} domain.Client
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /clients/{id} [get]
func getClientDoc() {}

// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body domain.Client true "Replacement client"
// @Success 200 {object} domain.Client
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Changed by another request"
// @Security BearerAuth
// @Router /clients/{id} [put]
func updateClientDoc() {}

// @Summary Delete a client
// @Tags clients
// @Param id path string true "Client ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /clients/{id} [delete]
func deleteClientDoc() {}

// @Summary Create a lead
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body domain.Lead true "Lead to create"
// @Success 201 {object} domain.Lead
// @Failure 400 {object} map[string]string "Invalid request"
// @Security BearerAuth
// @Router /leads [post]
func createLeadDoc() {}

// @Summary List leads
// @Tags leads
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Rows to skip" default(0)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListResponse[domain.Lead]
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /leads [get]
func listLeadDoc() {}

// @Summary Get a lead
// @Tags leads
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} domain.Lead
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /leads/{id} [get]
func getLeadDoc() {}

// @Summary Update a lead
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param lead body domain.Lead true "Replacement lead"
// @Success 200 {object} domain.Lead
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Changed by another request"
// @Security BearerAuth
// @Router /leads/{id} [put]
func updateLeadDoc() {}

// @Summary Delete a lead
// @Tags leads
// @Param id path string true "Lead ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /leads/{id} [delete]
func deleteLeadDoc() {}

// @Summary Create a partnership
// @Tags partnerships
// @Accept json
// @Produce json
// @Param partnership body domain.Partnership true "Partnership to create"
// @Success 201 {object} domain.Partnership
// @Failure 400 {object} map[string]string "Invalid request"
// @Security BearerAuth
// @Router /partnerships [post]
func createPartnershipDoc() {}

// @Summary List partnerships
// @Tags partnerships
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Rows to skip" default(0)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListResponse[domain.Partnership]
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /partnerships [get]
func listPartnershipDoc() {}

// @Summary Get a partnership
// @Tags partnerships
// @Produce json
// @Param id path string true "Partnership ID"
// @Success 200 {object} domain.Partnership
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /partnerships/{id} [get]
func getPartnershipDoc() {}

// @Summary Update a partnership
// @Tags partnerships
// @Accept json
// @Produce json
// @Param id path string true "Partnership ID"
// @Param partnership body domain.Partnership true "Replacement partnership"
// @Success 200 {object} domain.Partnership
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Changed by another request"
// @Security BearerAuth
// @Router /partnerships/{id} [put]
func updatePartnershipDoc() {}

// @Summary Delete a partnership
// @Tags partnerships
// @Param id path string true "Partnership ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /partnerships/{id} [delete]
func deletePartnershipDoc() {}

// @Summary Create a employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body domain.Employee true "Employee to create"
// @Success 201 {object} domain.Employee
// @Failure 400 {object} map[string]string "Invalid request"
// @Security BearerAuth
// @Router /employees [post]
func createEmployeeDoc() {}

// @Summary List employees
// @Tags employees
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Rows to skip" default(0)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListResponse[domain.Employee]
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /employees [get]
func listEmployeeDoc() {}

// @Summary Get a employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} domain.Employee
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /employees/{id} [get]
func getEmployeeDoc() {}

// @Summary Update a employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body domain.Employee true "Replacement employee"
// @Success 200 {object} domain.Employee
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Changed by another request"
// @Security BearerAuth
// @Router /employees/{id} [put]
func updateEmployeeDoc() {}

// @Summary Delete a employee
// @Tags employees
// @Param id path string true "Employee ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /employees/{id} [delete]
func deleteEmployeeDoc() {}

// @Summary Create a current asset
// @Tags assets
// @Accept json
// @Produce json
// @Param currentAsset body domain.CurrentAsset true "Current asset to create"
// @Success 201 {object} domain.CurrentAsset
// @Failure 400 {object} map[string]string "Invalid request"
// @Security BearerAuth
// @Router /assets/current [post]
func createCurrentAssetDoc() {}

// @Summary List current assets
// @Tags assets
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Rows to skip" default(0)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListResponse[domain.CurrentAsset]
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /assets/current [get]
func listCurrentAssetDoc() {}

// @Summary Get a current asset
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} domain.CurrentAsset
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /assets/current/{id} [get]
func getCurrentAssetDoc() {}

// @Summary Update a current asset
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Param currentAsset body domain.CurrentAsset true "Replacement current asset"
// @Success 200 {object} domain.CurrentAsset
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Changed by another request"
// @Security BearerAuth
// @Router /assets/current/{id} [put]
func updateCurrentAssetDoc() {}

// @Summary Delete a current asset
// @Tags assets
// @Param id path string true "Asset ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /assets/current/{id} [delete]
func deleteCurrentAssetDoc() {}

// @Summary Create a non-current asset
// @Tags assets
// @Accept json
// @Produce json
// @Param nonCurrentAsset body domain.NonCurrentAsset true "Non-current asset to create"
// @Success 201 {object} domain.NonCurrentAsset
// @Failure 400 {object} map[string]string "Invalid request"
// @Security BearerAuth
// @Router /assets/non-current [post]
func createNonCurrentAssetDoc() {}

// @Summary List non-current assets
// @Tags assets
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Rows to skip" default(0)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListResponse[domain.NonCurrentAsset]
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /assets/non-current [get]
func listNonCurrentAssetDoc() {}

// @Summary Get a non-current asset
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} domain.NonCurrentAsset
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /assets/non-current/{id} [get]
func getNonCurrentAssetDoc() {}

// @Summary Update a non-current asset
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Param nonCurrentAsset body domain.NonCurrentAsset true "Replacement non-current asset"
// @Success 200 {object} domain.NonCurrentAsset
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Changed by another request"
// @Security BearerAuth
// @Router /assets/non-current/{id} [put]
func updateNonCurrentAssetDoc() {}

// @Summary Delete a non-current asset
// @Tags assets
// @Param id path string true "Asset ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /assets/non-current/{id} [delete]
func deleteNonCurrentAssetDoc() {}

// @Summary Create a current liability
// @Tags liabilities
// @Accept json
// @Produce json
// @Param currentLiability body domain.Liability true "Current liability to create"
// @Success 201 {object} domain.Liability
// @Failure 400 {object} map[string]string "Invalid request"
// @Security BearerAuth
// @Router /liabilities/current [post]
func createCurrentLiabilityDoc() {}

// @Summary List current liabilities
// @Tags liabilities
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Rows to skip" default(0)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListResponse[domain.Liability]
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /liabilities/current [get]
func listCurrentLiabilityDoc() {}

// @Summary Get a current liability
// @Tags liabilities
// @Produce json
// @Param id path string true "Liability ID"
// @Success 200 {object} domain.Liability
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /liabilities/current/{id} [get]
func getCurrentLiabilityDoc() {}

// @Summary Update a current liability
// @Tags liabilities
// @Accept json
// @Produce json
// @Param id path string true "Liability ID"
// @Param currentLiability body domain.Liability true "Replacement current liability"
// @Success 200 {object} domain.Liability
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Changed by another request"
// @Security BearerAuth
// @Router /liabilities/current/{id} [put]
func updateCurrentLiabilityDoc() {}

// @Summary Delete a current liability
// @Tags liabilities
// @Param id path string true "Liability ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /liabilities/current/{id} [delete]
func deleteCurrentLiabilityDoc() {}

// @Summary Create a non-current liability
// @Tags liabilities
// @Accept json
// @Produce json
// @Param nonCurrentLiability body domain.Liability true "Non-current liability to create"
// @Success 201 {object} domain.Liability
// @Failure 400 {object} map[string]string "Invalid request"
// @Security BearerAuth
// @Router /liabilities/non-current [post]
func createNonCurrentLiabilityDoc() {}

// @Summary List non-current liabilities
// @Tags liabilities
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Rows to skip" default(0)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListResponse[domain.Liability]
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /liabilities/non-current [get]
func listNonCurrentLiabilityDoc() {}

// @Summary Get a non-current liability
// @Tags liabilities
// @Produce json
// @Param id path string true "Liability ID"
// @Success 200 {object} domain.Liability
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /liabilities/non-current/{id} [get]
func getNonCurrentLiabilityDoc() {}

// @Summary Update a non-current liability
// @Tags liabilities
// @Accept json
// @Produce json
// @Param id path string true "Liability ID"
// @Param nonCurrentLiability body domain.Liability true "Replacement non-current liability"
// @Success 200 {object} domain.Liability
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Changed by another request"
// @Security BearerAuth
// @Router /liabilities/non-current/{id} [put]
func updateNonCurrentLiabilityDoc() {}

// @Summary Delete a non-current liability
// @Tags liabilities
// @Param id path string true "Liability ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /liabilities/non-current/{id} [delete]
func deleteNonCurrentLiabilityDoc() {}

// @Summary Create a monetary account
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body domain.MonetaryAccount true "Monetary account to create"
// @Success 201 {object} domain.MonetaryAccount
// @Failure 400 {object} map[string]string "Invalid request"
// @Security BearerAuth
// @Router /accounts [post]
func createAccountDoc() {}

// @Summary List monetary accounts
// @Tags accounts
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Rows to skip" default(0)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListResponse[domain.MonetaryAccount]
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /accounts [get]
func listAccountDoc() {}

// @Summary Get a monetary account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} domain.MonetaryAccount
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /accounts/{id} [get]
func getAccountDoc() {}

// @Summary Update a monetary account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param account body domain.MonetaryAccount true "Replacement monetary account"
// @Success 200 {object} domain.MonetaryAccount
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Changed by another request"
// @Security BearerAuth
// @Router /accounts/{id} [put]
func updateAccountDoc() {}

// @Summary Delete a monetary account
// @Tags accounts
// @Param id path string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /accounts/{id} [delete]
func deleteAccountDoc() {}

// @Summary Create a team event
// @Tags events
// @Accept json
// @Produce json
// @Param event body domain.TeamEvent true "Team event to create"
// @Success 201 {object} domain.TeamEvent
// @Failure 400 {object} map[string]string "Invalid request"
// @Security BearerAuth
// @Router /events [post]
func createEventDoc() {}

// @Summary List team events
// @Tags events
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Rows to skip" default(0)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListResponse[domain.TeamEvent]
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /events [get]
func listEventDoc() {}

// @Summary Get a team event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.TeamEvent
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /events/{id} [get]
func getEventDoc() {}

// @Summary Update a team event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body domain.TeamEvent true "Replacement team event"
// @Success 200 {object} domain.TeamEvent
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Changed by another request"
// @Security BearerAuth
// @Router /events/{id} [put]
func updateEventDoc() {}

// @Summary Delete a team event
// @Tags events
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /events/{id} [delete]
func deleteEventDoc() {}
