package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/repository"
)

// ── Mock AccountRepository ──

type mockAccountRepo struct {
	accounts  map[string]*model.Account
	idCounter int
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{accounts: make(map[string]*model.Account)}
}

func (m *mockAccountRepo) Create(_ context.Context, account *model.Account) error {
	for _, a := range m.accounts {
		if a.Username == account.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if account.AccountID == "" {
		m.idCounter++
		account.AccountID = fmt.Sprintf("acc-%d", m.idCounter)
	}
	m.accounts[account.AccountID] = account
	return nil
}

func (m *mockAccountRepo) GetByID(_ context.Context, id string) (*model.Account, error) {
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccountRepo) GetByUsername(_ context.Context, username string) (*model.Account, error) {
	for _, a := range m.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccountRepo) Update(_ context.Context, account *model.Account) error {
	m.accounts[account.AccountID] = account
	return nil
}

func (m *mockAccountRepo) Delete(_ context.Context, id string) error {
	delete(m.accounts, id)
	return nil
}

func (m *mockAccountRepo) List(_ context.Context, offset, limit int) ([]model.Account, int64, error) {
	var all []model.Account
	for _, a := range m.accounts {
		all = append(all, *a)
	}
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockAccountRepo) CountByRole(_ context.Context, roleID string) (int64, error) {
	var count int64
	for _, a := range m.accounts {
		if a.RoleID != nil && *a.RoleID == roleID {
			count++
		}
	}
	return count, nil
}

// ── Mock RoleRepository ──

type mockRoleRepo struct {
	roles map[string]*model.Role
}

func newMockRoleRepo() *mockRoleRepo {
	return &mockRoleRepo{roles: make(map[string]*model.Role)}
}

func (m *mockRoleRepo) Create(_ context.Context, role *model.Role) error {
	if role.RoleID == "" {
		role.RoleID = "role-" + role.Name
	}
	m.roles[role.RoleID] = role
	return nil
}

func (m *mockRoleRepo) GetByID(_ context.Context, id string) (*model.Role, error) {
	if r, ok := m.roles[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoleRepo) GetByName(_ context.Context, name string) (*model.Role, error) {
	for _, r := range m.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoleRepo) List(_ context.Context) ([]model.Role, error) {
	var result []model.Role
	for _, r := range m.roles {
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockRoleRepo) Delete(_ context.Context, id string) error {
	delete(m.roles, id)
	return nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[string]*model.Student
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	for _, s := range m.students {
		if s.StudentCode == student.StudentCode || s.Email == student.Email || s.Phone == student.Phone {
			return gorm.ErrDuplicatedKey
		}
	}
	if student.StudentID == "" {
		student.StudentID = "stu-" + student.StudentCode
	}
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByCode(_ context.Context, code string) (*model.Student, error) {
	for _, s := range m.students {
		if s.StudentCode == code {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByEmail(_ context.Context, email string) (*model.Student, error) {
	for _, s := range m.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByPhone(_ context.Context, phone string) (*model.Student, error) {
	for _, s := range m.students {
		if s.Phone == phone {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id string) error {
	delete(m.students, id)
	return nil
}

func (m *mockStudentRepo) List(_ context.Context, filters *repository.StudentListFilters, offset, limit int) ([]model.Student, int64, error) {
	var filtered []model.Student
	for _, s := range m.students {
		if filters != nil {
			if filters.Status != "" && s.Status != filters.Status {
				continue
			}
			if filters.Gender != "" && s.Gender != filters.Gender {
				continue
			}
			if filters.Keyword != "" &&
				!strings.Contains(s.FullName, filters.Keyword) &&
				!strings.Contains(s.StudentCode, filters.Keyword) &&
				!strings.Contains(s.Email, filters.Keyword) {
				continue
			}
		}
		filtered = append(filtered, *s)
	}
	return paginate(filtered, offset, limit), int64(len(filtered)), nil
}

// ── Mock BuildingRepository ──

type mockBuildingRepo struct {
	buildings map[string]*model.Building
}

func newMockBuildingRepo() *mockBuildingRepo {
	return &mockBuildingRepo{buildings: make(map[string]*model.Building)}
}

func (m *mockBuildingRepo) Create(_ context.Context, building *model.Building) error {
	if building.BuildingID == "" {
		building.BuildingID = "bld-" + building.Name
	}
	m.buildings[building.BuildingID] = building
	return nil
}

func (m *mockBuildingRepo) GetByID(_ context.Context, id string) (*model.Building, error) {
	if b, ok := m.buildings[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBuildingRepo) GetByName(_ context.Context, name string) (*model.Building, error) {
	for _, b := range m.buildings {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBuildingRepo) List(_ context.Context) ([]model.Building, error) {
	var result []model.Building
	for _, b := range m.buildings {
		result = append(result, *b)
	}
	return result, nil
}

func (m *mockBuildingRepo) Update(_ context.Context, building *model.Building) error {
	m.buildings[building.BuildingID] = building
	return nil
}

func (m *mockBuildingRepo) Delete(_ context.Context, id string) error {
	delete(m.buildings, id)
	return nil
}

// ── Mock RoomTypeRepository ──

type mockRoomTypeRepo struct {
	roomTypes map[string]*model.RoomType
}

func newMockRoomTypeRepo() *mockRoomTypeRepo {
	return &mockRoomTypeRepo{roomTypes: make(map[string]*model.RoomType)}
}

func (m *mockRoomTypeRepo) Create(_ context.Context, roomType *model.RoomType) error {
	if roomType.RoomTypeID == "" {
		roomType.RoomTypeID = "rt-" + roomType.Name
	}
	m.roomTypes[roomType.RoomTypeID] = roomType
	return nil
}

func (m *mockRoomTypeRepo) GetByID(_ context.Context, id string) (*model.RoomType, error) {
	if rt, ok := m.roomTypes[id]; ok {
		return rt, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomTypeRepo) List(_ context.Context) ([]model.RoomType, error) {
	var result []model.RoomType
	for _, rt := range m.roomTypes {
		result = append(result, *rt)
	}
	return result, nil
}

func (m *mockRoomTypeRepo) Update(_ context.Context, roomType *model.RoomType) error {
	m.roomTypes[roomType.RoomTypeID] = roomType
	return nil
}

func (m *mockRoomTypeRepo) Delete(_ context.Context, id string) error {
	delete(m.roomTypes, id)
	return nil
}

// ── Mock RoomRepository ──

type mockRoomRepo struct {
	rooms     map[string]*model.Room
	roomTypes *mockRoomTypeRepo // GetByID 模拟 Preload RoomType
}

func newMockRoomRepo(roomTypes *mockRoomTypeRepo) *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[string]*model.Room), roomTypes: roomTypes}
}

func (m *mockRoomRepo) Create(_ context.Context, room *model.Room) error {
	for _, r := range m.rooms {
		if r.BuildingID == room.BuildingID && r.Name == room.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	if room.RoomID == "" {
		room.RoomID = "room-" + room.Name
	}
	m.rooms[room.RoomID] = room
	return nil
}

func (m *mockRoomRepo) GetByID(_ context.Context, id string) (*model.Room, error) {
	room, ok := m.rooms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if room.RoomType == nil && m.roomTypes != nil {
		if rt, ok := m.roomTypes.roomTypes[room.RoomTypeID]; ok {
			room.RoomType = rt
		}
	}
	return room, nil
}

func (m *mockRoomRepo) List(_ context.Context, filters *repository.RoomListFilters, offset, limit int) ([]model.Room, int64, error) {
	var filtered []model.Room
	for _, r := range m.rooms {
		if filters != nil {
			if filters.BuildingID != "" && r.BuildingID != filters.BuildingID {
				continue
			}
			if filters.Status != "" && r.Status != filters.Status {
				continue
			}
		}
		filtered = append(filtered, *r)
	}
	return paginate(filtered, offset, limit), int64(len(filtered)), nil
}

func (m *mockRoomRepo) ListEligible(_ context.Context, gender string) ([]model.Room, error) {
	var result []model.Room
	for _, r := range m.rooms {
		if r.Status != model.RoomStatusAvailable {
			continue
		}
		rt := r.RoomType
		if rt == nil && m.roomTypes != nil {
			rt = m.roomTypes.roomTypes[r.RoomTypeID]
		}
		if rt == nil || (rt.Gender != gender && rt.Gender != model.GenderMixed) {
			continue
		}
		cp := *r
		cp.RoomType = rt
		result = append(result, cp)
	}
	return result, nil
}

func (m *mockRoomRepo) Update(_ context.Context, room *model.Room) error {
	m.rooms[room.RoomID] = room
	return nil
}

func (m *mockRoomRepo) Delete(_ context.Context, id string) error {
	delete(m.rooms, id)
	return nil
}

func (m *mockRoomRepo) CountByBuilding(_ context.Context, buildingID string) (int64, error) {
	var count int64
	for _, r := range m.rooms {
		if r.BuildingID == buildingID {
			count++
		}
	}
	return count, nil
}

func (m *mockRoomRepo) CountByRoomType(_ context.Context, roomTypeID string) (int64, error) {
	var count int64
	for _, r := range m.rooms {
		if r.RoomTypeID == roomTypeID {
			count++
		}
	}
	return count, nil
}

// ── Mock SemesterRepository ──

type mockSemesterRepo struct {
	semesters map[string]*model.Semester
}

func newMockSemesterRepo() *mockSemesterRepo {
	return &mockSemesterRepo{semesters: make(map[string]*model.Semester)}
}

func (m *mockSemesterRepo) Create(_ context.Context, semester *model.Semester) error {
	for _, s := range m.semesters {
		if s.Name == semester.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	if semester.SemesterID == "" {
		semester.SemesterID = "sem-" + semester.Name
	}
	m.semesters[semester.SemesterID] = semester
	return nil
}

func (m *mockSemesterRepo) GetByID(_ context.Context, id string) (*model.Semester, error) {
	if s, ok := m.semesters[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) GetByName(_ context.Context, name string) (*model.Semester, error) {
	for _, s := range m.semesters {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) List(_ context.Context) ([]model.Semester, error) {
	var result []model.Semester
	for _, s := range m.semesters {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockSemesterRepo) Update(_ context.Context, semester *model.Semester) error {
	m.semesters[semester.SemesterID] = semester
	return nil
}

func (m *mockSemesterRepo) Delete(_ context.Context, id string) error {
	delete(m.semesters, id)
	return nil
}

// ── Mock RegistrationRepository ──

type mockRegistrationRepo struct {
	registrations map[string]*model.RoomRegistration
	idCounter     int
}

func newMockRegistrationRepo() *mockRegistrationRepo {
	return &mockRegistrationRepo{registrations: make(map[string]*model.RoomRegistration)}
}

func (m *mockRegistrationRepo) Create(_ context.Context, reg *model.RoomRegistration) error {
	for _, r := range m.registrations {
		if r.StudentID == reg.StudentID && r.SemesterID == reg.SemesterID && r.IsActive() && reg.IsActive() {
			return gorm.ErrDuplicatedKey
		}
	}
	if reg.RegistrationID == "" {
		m.idCounter++
		reg.RegistrationID = fmt.Sprintf("reg-%d", m.idCounter)
	}
	m.registrations[reg.RegistrationID] = reg
	return nil
}

func (m *mockRegistrationRepo) GetByID(_ context.Context, id string) (*model.RoomRegistration, error) {
	if r, ok := m.registrations[id]; ok {
		// 与 List 一致返回副本，调用方改写读取结果不得污染"库中"行
		clone := *r
		return &clone, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRegistrationRepo) FindActive(_ context.Context, studentID, semesterID, excludeID string) (*model.RoomRegistration, error) {
	for _, r := range m.registrations {
		if excludeID != "" && r.RegistrationID == excludeID {
			continue
		}
		if r.StudentID == studentID && r.SemesterID == semesterID && r.IsActive() {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRegistrationRepo) CountActiveByRoom(_ context.Context, roomID string) (int64, error) {
	var count int64
	for _, r := range m.registrations {
		if r.RoomID == roomID && r.IsActive() {
			count++
		}
	}
	return count, nil
}

func (m *mockRegistrationRepo) CountBySemester(_ context.Context, semesterID string) (int64, error) {
	var count int64
	for _, r := range m.registrations {
		if r.SemesterID == semesterID {
			count++
		}
	}
	return count, nil
}

func (m *mockRegistrationRepo) CountByRoom(_ context.Context, roomID string) (int64, error) {
	var count int64
	for _, r := range m.registrations {
		if r.RoomID == roomID {
			count++
		}
	}
	return count, nil
}

func (m *mockRegistrationRepo) List(_ context.Context, filters *repository.RegistrationListFilters, offset, limit int) ([]model.RoomRegistration, int64, error) {
	var filtered []model.RoomRegistration
	for _, r := range m.registrations {
		if filters != nil {
			if filters.StudentID != "" && r.StudentID != filters.StudentID {
				continue
			}
			if filters.RoomID != "" && r.RoomID != filters.RoomID {
				continue
			}
			if filters.SemesterID != "" && r.SemesterID != filters.SemesterID {
				continue
			}
			if filters.Status != "" && r.Status != filters.Status {
				continue
			}
		}
		filtered = append(filtered, *r)
	}
	return paginate(filtered, offset, limit), int64(len(filtered)), nil
}

func (m *mockRegistrationRepo) Update(_ context.Context, reg *model.RoomRegistration) error {
	m.registrations[reg.RegistrationID] = reg
	return nil
}

func (m *mockRegistrationRepo) Delete(_ context.Context, id string) error {
	delete(m.registrations, id)
	return nil
}

// ── Mock UtilitiesRepository ──

type mockUtilitiesRepo struct {
	records   map[string]*model.Utilities
	idCounter int
}

func newMockUtilitiesRepo() *mockUtilitiesRepo {
	return &mockUtilitiesRepo{records: make(map[string]*model.Utilities)}
}

func (m *mockUtilitiesRepo) Create(_ context.Context, utilities *model.Utilities) error {
	if utilities.UtilitiesID == "" {
		m.idCounter++
		utilities.UtilitiesID = fmt.Sprintf("util-%d", m.idCounter)
	}
	m.records[utilities.UtilitiesID] = utilities
	return nil
}

func (m *mockUtilitiesRepo) GetByID(_ context.Context, id string) (*model.Utilities, error) {
	if u, ok := m.records[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUtilitiesRepo) GetLatestByRoom(_ context.Context, roomID string) (*model.Utilities, error) {
	var latest *model.Utilities
	for _, u := range m.records {
		if u.RoomID != roomID {
			continue
		}
		if latest == nil || u.EndDate.After(latest.EndDate) {
			latest = u
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (m *mockUtilitiesRepo) List(_ context.Context, filters *repository.UtilitiesListFilters, offset, limit int) ([]model.Utilities, int64, error) {
	var filtered []model.Utilities
	for _, u := range m.records {
		if filters != nil {
			if filters.RoomID != "" && u.RoomID != filters.RoomID {
				continue
			}
			if filters.DateFrom != nil && u.StartDate.Before(*filters.DateFrom) {
				continue
			}
			if filters.DateTo != nil && u.EndDate.After(*filters.DateTo) {
				continue
			}
		}
		filtered = append(filtered, *u)
	}
	return paginate(filtered, offset, limit), int64(len(filtered)), nil
}

func (m *mockUtilitiesRepo) Update(_ context.Context, utilities *model.Utilities) error {
	m.records[utilities.UtilitiesID] = utilities
	return nil
}

func (m *mockUtilitiesRepo) Delete(_ context.Context, id string) error {
	delete(m.records, id)
	return nil
}

// ── Mock PriceListRepository ──

type mockPriceListRepo struct {
	prices map[string]*model.PriceList
}

func newMockPriceListRepo() *mockPriceListRepo {
	return &mockPriceListRepo{prices: make(map[string]*model.PriceList)}
}

func (m *mockPriceListRepo) Create(_ context.Context, price *model.PriceList) error {
	for _, p := range m.prices {
		if p.CostType == price.CostType {
			return gorm.ErrDuplicatedKey
		}
	}
	if price.PriceListID == "" {
		price.PriceListID = "price-" + price.CostType
	}
	m.prices[price.PriceListID] = price
	return nil
}

func (m *mockPriceListRepo) GetByID(_ context.Context, id string) (*model.PriceList, error) {
	if p, ok := m.prices[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPriceListRepo) GetByCostType(_ context.Context, costType string) (*model.PriceList, error) {
	for _, p := range m.prices {
		if p.CostType == costType {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPriceListRepo) List(_ context.Context) ([]model.PriceList, error) {
	var result []model.PriceList
	for _, p := range m.prices {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockPriceListRepo) Update(_ context.Context, price *model.PriceList) error {
	m.prices[price.PriceListID] = price
	return nil
}

func (m *mockPriceListRepo) Delete(_ context.Context, id string) error {
	delete(m.prices, id)
	return nil
}

// ── Mock InvoiceRepository ──

type mockInvoiceRepo struct {
	invoices  map[string]*model.Invoice
	idCounter int
}

func newMockInvoiceRepo() *mockInvoiceRepo {
	return &mockInvoiceRepo{invoices: make(map[string]*model.Invoice)}
}

func (m *mockInvoiceRepo) Create(_ context.Context, invoice *model.Invoice) error {
	if invoice.InvoiceID == "" {
		m.idCounter++
		invoice.InvoiceID = fmt.Sprintf("inv-%d", m.idCounter)
	}
	m.invoices[invoice.InvoiceID] = invoice
	return nil
}

func (m *mockInvoiceRepo) GetByID(_ context.Context, id string) (*model.Invoice, error) {
	if inv, ok := m.invoices[id]; ok {
		return inv, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInvoiceRepo) List(_ context.Context, filters *repository.InvoiceListFilters, offset, limit int) ([]model.Invoice, int64, error) {
	var filtered []model.Invoice
	for _, inv := range m.invoices {
		if filters != nil {
			if filters.RoomID != "" && inv.RoomID != filters.RoomID {
				continue
			}
			if filters.Status != "" && inv.Status != filters.Status {
				continue
			}
			if filters.DateFrom != nil && inv.InvoiceDate.Before(*filters.DateFrom) {
				continue
			}
			if filters.DateTo != nil && inv.InvoiceDate.After(*filters.DateTo) {
				continue
			}
		}
		filtered = append(filtered, *inv)
	}
	return paginate(filtered, offset, limit), int64(len(filtered)), nil
}

func (m *mockInvoiceRepo) Update(_ context.Context, invoice *model.Invoice) error {
	m.invoices[invoice.InvoiceID] = invoice
	return nil
}

// UpdateColumns 模拟按列更新；关联列被清空/重设时同步丢弃过期的预加载对象
func (m *mockInvoiceRepo) UpdateColumns(_ context.Context, id string, columns map[string]interface{}) error {
	inv, ok := m.invoices[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	setFK := func(value interface{}, target **string) {
		if value == nil {
			*target = nil
			return
		}
		v := value.(string)
		*target = &v
	}
	for column, value := range columns {
		switch column {
		case "status":
			inv.Status = value.(string)
		case "invoice_date":
			inv.InvoiceDate = value.(time.Time)
		case "utilities_id":
			setFK(value, &inv.UtilitiesID)
			inv.Utilities = nil
		case "electricity_price_id":
			setFK(value, &inv.ElectricityPriceID)
			inv.ElectricityPrice = nil
		case "water_price_id":
			setFK(value, &inv.WaterPriceID)
			inv.WaterPrice = nil
		}
	}
	return nil
}

func (m *mockInvoiceRepo) Delete(_ context.Context, id string) error {
	delete(m.invoices, id)
	return nil
}

func (m *mockInvoiceRepo) CountByUtilities(_ context.Context, utilitiesID string) (int64, error) {
	var count int64
	for _, inv := range m.invoices {
		if inv.UtilitiesID != nil && *inv.UtilitiesID == utilitiesID {
			count++
		}
	}
	return count, nil
}

func (m *mockInvoiceRepo) CountByPriceList(_ context.Context, priceListID string) (int64, error) {
	var count int64
	for _, inv := range m.invoices {
		if (inv.ElectricityPriceID != nil && *inv.ElectricityPriceID == priceListID) ||
			(inv.WaterPriceID != nil && *inv.WaterPriceID == priceListID) {
			count++
		}
	}
	return count, nil
}

// ── 测试聚合 ──

// testRepos 持有全部 mock 仓储及其聚合，供各 Service 测试按需取用
type testRepos struct {
	account      *mockAccountRepo
	role         *mockRoleRepo
	student      *mockStudentRepo
	building     *mockBuildingRepo
	roomType     *mockRoomTypeRepo
	room         *mockRoomRepo
	semester     *mockSemesterRepo
	registration *mockRegistrationRepo
	utilities    *mockUtilitiesRepo
	priceList    *mockPriceListRepo
	invoice      *mockInvoiceRepo

	repo *repository.Repository
}

func newTestRepos() *testRepos {
	roomType := newMockRoomTypeRepo()
	t := &testRepos{
		account:      newMockAccountRepo(),
		role:         newMockRoleRepo(),
		student:      newMockStudentRepo(),
		building:     newMockBuildingRepo(),
		roomType:     roomType,
		room:         newMockRoomRepo(roomType),
		semester:     newMockSemesterRepo(),
		registration: newMockRegistrationRepo(),
		utilities:    newMockUtilitiesRepo(),
		priceList:    newMockPriceListRepo(),
		invoice:      newMockInvoiceRepo(),
	}
	t.repo = &repository.Repository{
		Account:      t.account,
		Role:         t.role,
		Student:      t.student,
		Building:     t.building,
		RoomType:     t.roomType,
		Room:         t.room,
		Semester:     t.semester,
		Registration: t.registration,
		Utilities:    t.utilities,
		PriceList:    t.priceList,
		Invoice:      t.invoice,
	}
	return t
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
